package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned when the booking is not in a cancellable state.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned on an unknown booking status value.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on structurally invalid request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
