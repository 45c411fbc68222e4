package create_booking

import (
	"context"

	createBooking "github.com/stayforge/booking-service/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Metrics is the optional business-metrics hook (nil disables it).
type Metrics interface {
	IncBookingCreated()
	IncBookingConflict()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
