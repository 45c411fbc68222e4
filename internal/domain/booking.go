package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents a room reservation.
type Booking struct {
	ID         int64
	Reference  string
	RoomNumber string
	RoomType   string

	CheckInDate  time.Time
	CheckOutDate time.Time

	Adults       int
	Children     int
	ExtraBeds    int
	ExtraBedRate float64

	SpecialRequests *string

	ClientID      int64
	PaymentMethod string
	PaymentStatus string
	Amount        float64
	TotalAmount   float64
	TermsAccepted bool

	Status BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the stay interval of the booking.
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
}

// IsActive returns true if the booking still occupies its room.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// NewBookingReference generates a human-readable booking identifier of the
// shape BK-<epoch millis>-<4-digit random>. Uniqueness is backstopped by a
// unique index on the bookings table.
func NewBookingReference(now time.Time) string {
	return fmt.Sprintf("BK-%d-%04d", now.UnixMilli(), rand.Intn(10_000))
}

// RoomBookingsFilter narrows a room's booking listing.
type RoomBookingsFilter struct {
	RoomNumber      string     // required
	StartDate       *time.Time // stays ending after this date (optional)
	EndDate         *time.Time // stays starting before this date (optional)
	Status          *BookingStatus
	IncludeInactive bool // include cancelled and no-show bookings
}
