package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotFound is returned when the selected client does not exist
	// in the guest directory.
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrClientInactive is returned when the selected client exists but may
	// not be attached to new bookings.
	ErrClientInactive = errors.New("create_booking: client is not active")

	// ErrRoomNotAvailable is returned when the serializable re-check finds a
	// conflicting reservation for the requested range.
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for the requested dates")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldErrors maps form field names to user-facing error messages. An empty
// map means the form is valid.
type FieldErrors map[string]string

// ValidationError carries the per-field messages of a failed validation
// pass. It is a normal outcome, not a programming error: the handler turns
// it into a 422 with the field map on the wire.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_booking: validation failed for %d field(s)", len(e.Fields))
}
