package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(rootOpts); err != nil {
				return err
			}
			f := rootOpts.formatter()
			if err := checkSession(rootOpts, f); err != nil {
				return err
			}

			user, err := rootOpts.Backend.Profile(cmd.Context())
			if err != nil {
				return fail(err, f, "Failed to load profile")
			}

			return f.Emit(user, func(w io.Writer) {
				renderProfile(w, user)
			})
		},
	}
}
