package quote_stay

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist.
	ErrRoomNotFound = errors.New("quote_stay: room not found")

	// ErrInvalidInput is returned on structurally invalid request data.
	ErrInvalidInput = errors.New("quote_stay: invalid input data")

	// ErrOccupancyExceeded is returned when the requested guests do not fit
	// the room even after extra bed derivation.
	ErrOccupancyExceeded = errors.New("quote_stay: occupancy exceeds room capacity")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("quote_stay: internal error")
)
