package create_booking

import (
	"time"

	"github.com/stayforge/booking-service/internal/domain"
)

// Request is the booking form as submitted by the operator.
type Request struct {
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
	TermsAccepted bool
}

// occupancy returns the occupancy part of the form.
func (r *Request) occupancy() domain.OccupancyRequest {
	return domain.OccupancyRequest{
		Adults:    r.Adults,
		Children:  r.Children,
		ExtraBeds: r.ExtraBeds,
	}
}

// stay returns the requested date range.
func (r *Request) stay() domain.DateRange {
	return domain.DateRange{CheckIn: r.CheckInDate, CheckOut: r.CheckOutDate}
}

// Response is the created booking together with its price breakdown.
type Response struct {
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
	ClientName    string
	PaymentMethod string
	PaymentStatus string
	Amount        float64
	TermsAccepted bool

	SubtotalRoom      float64
	SubtotalExtraBeds float64
	TotalAmount       float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
