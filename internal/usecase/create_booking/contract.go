package create_booking

import (
	"context"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
	"github.com/stayforge/booking-service/internal/integrations/guestdirectory"
)

// BookingRepository is the booking storage interface the use case depends on.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error)
}

// RoomRepository is the room catalogue interface.
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// GuestDirectoryClient resolves booking clients.
type GuestDirectoryClient interface {
	GetClient(ctx context.Context, clientID int64) (*guestdirectory.Client, error)
}

// TransactionManager runs the availability re-check and the insert in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
