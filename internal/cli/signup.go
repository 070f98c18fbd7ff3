package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

// SignupOptions holds flags for the signup command.
type SignupOptions struct {
	*RootOptions
	Signup          domain.Signup
	ConfirmPassword string
}

func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SignupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Signup.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&opts.Signup.MiddleName, "middle-name", "", "middle name")
	cmd.Flags().StringVar(&opts.Signup.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&opts.Signup.Username, "username", "", "username")
	cmd.Flags().StringVar(&opts.Signup.Contact, "contact", "", "contact number")
	cmd.Flags().StringVar(&opts.Signup.Address, "address", "", "address")
	cmd.Flags().StringVar(&opts.Signup.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&opts.Signup.Email, "email", "", "email")
	cmd.Flags().StringVar(&opts.Signup.Password, "password", "", "password")
	cmd.Flags().StringVar(&opts.ConfirmPassword, "confirm-password", "", "password confirmation")

	for _, required := range []string{"first-name", "last-name", "username", "email", "password", "confirm-password"} {
		_ = cmd.MarkFlagRequired(required)
	}

	return cmd
}

func runSignup(cmd *cobra.Command, opts *SignupOptions) error {
	if err := setup(opts.RootOptions); err != nil {
		return err
	}
	f := opts.formatter()

	// The only client-side check beyond required fields; everything else is
	// the server's call.
	if opts.Signup.Password != opts.ConfirmPassword {
		f.Notify("Passwords don't match.")
		return NewExitError(ExitCommandError, "passwords don't match")
	}
	opts.Signup.ConfirmPassword = opts.ConfirmPassword

	if err := opts.Backend.SignupUser(cmd.Context(), opts.Signup); err != nil {
		return WrapExitError(ExitFailure, "signup failed", err)
	}

	return f.Emit(map[string]string{"username": opts.Signup.Username}, func(w io.Writer) {
		fmt.Fprintln(w, "User registered successfully. You can now log in.")
	})
}
