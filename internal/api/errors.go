package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized covers 401 and 403 outcomes on authenticated endpoints.
var ErrUnauthorized = errors.New("unauthorized")

// RequestError is any other failed outcome: a transport error (Err set) or a
// non-2xx status (Status and Body set). Action names what the caller was
// doing so notifications can say which step failed.
type RequestError struct {
	Action string
	Status int
	Body   string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("%s: server returned %d: %s", e.Action, e.Status, e.Body)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
