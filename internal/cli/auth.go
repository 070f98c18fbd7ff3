package cli

import (
	"errors"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/api"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/cart"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/session"
)

func isAuthError(err error) bool {
	return errors.Is(err, cart.ErrAuthRequired) ||
		errors.Is(err, session.ErrNotLoggedIn) ||
		errors.Is(err, api.ErrUnauthorized)
}

// fail maps an action failure to its exit path: auth-shaped errors become
// the login redirect (a "please log in" notification, never an error
// banner), everything else a retry-prompt failure naming the action.
func fail(err error, f *OutputFormatter, action string) error {
	if isAuthError(err) {
		f.Notify("Please log in first.")
		return NewExitError(ExitAuthRequired, "authentication required")
	}
	f.Notify("%s. Please try again.", action)
	return WrapExitError(ExitFailure, action, err)
}

// checkSession enforces the hard precondition of authenticated screens: no
// stored token means redirect to login before any fetch happens.
func checkSession(opts *RootOptions, f *OutputFormatter) error {
	if _, err := opts.Session.Token(); err != nil {
		f.Notify("Please log in first.")
		return NewExitError(ExitAuthRequired, "authentication required")
	}
	return nil
}
