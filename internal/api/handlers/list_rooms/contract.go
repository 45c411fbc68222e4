package list_rooms

import (
	"context"

	"github.com/stayforge/booking-service/internal/domain"
)

type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
