package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the server rejects the attached
	// credential. The guard has already been invalidated by the time
	// callers see this error.
	ErrUnauthorized = errors.New("session expired or invalid")

	// ErrNotFound is returned when an operation targets an id the
	// server no longer knows about.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidCredentials is returned when a login is rejected.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidDraft is returned when the server rejects a draft as
	// malformed.
	ErrInvalidDraft = errors.New("invalid task draft")
)

// RemoteError is an application-level error reported by the server in
// an otherwise well-formed response. Message is the first entry of the
// response's error list.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %s", e.Message)
}

// TransportError wraps a network failure where no response was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
