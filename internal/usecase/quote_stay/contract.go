package quote_stay

import (
	"context"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
)

// RoomRepository is the room catalogue interface.
type RoomRepository interface {
	GetByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
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
