package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusPredicates(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.False(t, b.IsCancelled())

	b.Status = StatusConfirmed
	assert.True(t, b.CanBeCancelled())

	b.Status = StatusCheckedIn
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())

	b.Status = StatusNoShow
	assert.False(t, b.IsActive())
	assert.False(t, b.IsCancelled())
}

func TestNewBookingReference(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ref := NewBookingReference(now)

	assert.Regexp(t, regexp.MustCompile(`^BK-1748779200000-\d{4}$`), ref)
}

func TestRoom_IsAvailable(t *testing.T) {
	room := &Room{
		RoomNumber:  "101",
		RoomType:    "double",
		NightlyRate: 2000,
		Bookings: []DateRange{
			{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 5)},
			{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 12)},
		},
	}

	assert.False(t, room.IsAvailable(DateRange{CheckIn: date(2025, 6, 2), CheckOut: date(2025, 6, 3)}),
		"range inside an existing stay is not available")
	assert.False(t, room.IsAvailable(DateRange{CheckIn: date(2025, 6, 4), CheckOut: date(2025, 6, 11)}),
		"range spanning two stays is not available")
	assert.True(t, room.IsAvailable(DateRange{CheckIn: date(2025, 6, 5), CheckOut: date(2025, 6, 10)}),
		"gap between stays is available, boundaries inclusive")
}

func TestRoom_IsAvailable_NoBookings(t *testing.T) {
	req := DateRange{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 2)}

	empty := &Room{RoomNumber: "101", Bookings: []DateRange{}}
	assert.True(t, empty.IsAvailable(req))

	// nil bookings fail open: unknown occupancy means available.
	unknown := &Room{RoomNumber: "102"}
	assert.True(t, unknown.IsAvailable(req))
}
