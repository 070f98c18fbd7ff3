package cart

import "errors"

var (
	// ErrAuthRequired means no valid session is present. Callers redirect to
	// login instead of showing an error banner.
	ErrAuthRequired = errors.New("authentication required")

	// ErrQuantityOutOfRange is a client-side rejection; no network call was
	// made and local state is untouched.
	ErrQuantityOutOfRange = errors.New("quantity out of range")

	// ErrStaleResponse marks a mutation whose response was superseded by a
	// later mutation of the same line item before it resolved.
	ErrStaleResponse = errors.New("stale mutation response discarded")
)
