package models

import (
	"fmt"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
)

// BookingResponse is the service-level view of one booking.
type BookingResponse struct {
	ID        int64
	Reference string
	Status    string

	RoomNumber   string
	RoomType     string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Nights       int

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

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse is a list of bookings with its total count.
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// GetRoomBookingsRequest filters a room's booking listing.
type GetRoomBookingsRequest struct {
	RoomNumber      string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter converts the request into a storage filter.
func (r *GetRoomBookingsRequest) ToDomainFilter() (domain.RoomBookingsFilter, error) {
	filter := domain.RoomBookingsFilter{
		RoomNumber:      r.RoomNumber,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.RoomBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest carries a cancellation.
type CancelBookingRequest struct {
	Reason string
}

// UpdateStatusRequest moves a booking to a new status.
type UpdateStatusRequest struct {
	Status string
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch status := domain.BookingStatus(s); status {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
		domain.StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// FromDomainBooking converts a domain booking into the response model.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		Status:             string(b.Status),
		RoomNumber:         b.RoomNumber,
		RoomType:           b.RoomType,
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		Nights:             b.Range().Nights(),
		Adults:             b.Adults,
		Children:           b.Children,
		ExtraBeds:          b.ExtraBeds,
		ExtraBedRate:       b.ExtraBedRate,
		SpecialRequests:    b.SpecialRequests,
		ClientID:           b.ClientID,
		PaymentMethod:      b.PaymentMethod,
		PaymentStatus:      b.PaymentStatus,
		Amount:             b.Amount,
		TotalAmount:        b.TotalAmount,
		TermsAccepted:      b.TermsAccepted,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]*BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, FromDomainBooking(b))
	}
	return result
}
