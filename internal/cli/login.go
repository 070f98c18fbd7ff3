package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Email    string
	Password string
}

func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password (prompted if omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, opts *LoginOptions) error {
	if err := setup(opts.RootOptions); err != nil {
		return err
	}
	f := opts.formatter()

	if opts.Email == "" {
		return NewExitError(ExitCommandError, "email is required")
	}
	if opts.Password == "" {
		fmt.Fprint(opts.Out, "Password: ")
		line, err := bufio.NewReader(opts.In).ReadString('\n')
		if err != nil && line == "" {
			return WrapExitError(ExitCommandError, "failed to read password", err)
		}
		opts.Password = strings.TrimSpace(line)
	}
	if opts.Password == "" {
		return NewExitError(ExitCommandError, "password is required")
	}

	token, err := opts.Backend.Login(cmd.Context(), opts.Email, opts.Password)
	if err != nil {
		return WrapExitError(ExitFailure, "login failed", err)
	}
	if err := opts.Session.Save(token); err != nil {
		return WrapExitError(ExitCommandError, "failed to store session token", err)
	}

	return f.Emit(map[string]string{"email": opts.Email}, func(w io.Writer) {
		fmt.Fprintln(w, "Successfully logged in!")
	})
}
