package guestdirectory

import "errors"

var (
	// ErrClientNotFound is returned when the guest does not exist in the directory.
	ErrClientNotFound = errors.New("guest directory: client not found")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("guestdirectory client: internal error")

	// ErrInvalidResponse is returned when the directory responds with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("guestdirectory client: invalid response")
)
