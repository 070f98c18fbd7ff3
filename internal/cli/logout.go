package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(rootOpts); err != nil {
				return err
			}
			// Logging out without a session is fine; the end state is the same.
			if err := rootOpts.Session.Clear(); err != nil {
				return WrapExitError(ExitCommandError, "failed to clear session", err)
			}
			return rootOpts.formatter().Emit(map[string]string{"session": "cleared"}, func(w io.Writer) {
				fmt.Fprintln(w, "Logged out.")
			})
		},
	}
}
