package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a blob or record does not exist.
// Check with errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("not found")

// ConflictError means the remote host rejected a write because the content
// changed since the sha used as precondition was read. The store never
// retries; callers re-fetch and decide.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("write conflict on %s: content changed since last read", e.Path)
}

// TransportError covers network failures, auth failures and unexpected
// upstream status codes. A timed-out write is indeterminate and also lands
// here; callers must re-fetch before retrying.
type TransportError struct {
	Op     string
	Path   string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
