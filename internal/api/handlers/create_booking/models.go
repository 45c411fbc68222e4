package create_booking

import (
	"fmt"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
	createBooking "github.com/stayforge/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request model. Dates are YYYY-MM-DD;
// terms_accepted is 0 or 1.
type CreateBookingRequest struct {
	RoomNumber      string  `json:"room_number"`
	RoomType        string  `json:"room_type"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	ExtraBeds       int     `json:"extra_beds"`
	ExtraBedRate    float64 `json:"extra_bed_rate"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	ClientID        int64   `json:"client_id"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentStatus   string  `json:"payment_status"`
	Amount          float64 `json:"amount"`
	TermsAccepted   int     `json:"terms_accepted"`
}

// BookingResponse is the HTTP response model.
type BookingResponse struct {
	ID               int64   `json:"id"`
	BookingReference string  `json:"booking_reference"`
	Status           string  `json:"status"`
	RoomNumber       string  `json:"room_number"`
	RoomType         string  `json:"room_type"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	Nights           int     `json:"nights"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	ExtraBeds        int     `json:"extra_beds"`
	ExtraBedRate     float64 `json:"extra_bed_rate"`
	SpecialRequests  *string `json:"special_requests,omitempty"`
	ClientID         int64   `json:"client_id"`
	ClientName       string  `json:"client_name"`
	PaymentMethod    string  `json:"payment_method"`
	PaymentStatus    string  `json:"payment_status"`
	Amount           float64 `json:"amount"`
	SubtotalRoom     float64 `json:"subtotal_room"`
	SubtotalExtraBed float64 `json:"subtotal_extra_beds"`
	TotalAmount      float64 `json:"total_amount"`
	TermsAccepted    int     `json:"terms_accepted"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
// Empty date strings stay zero-valued so the validator reports them as
// missing fields rather than as parse failures.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		RoomNumber:      r.RoomNumber,
		RoomType:        r.RoomType,
		Adults:          r.Adults,
		Children:        r.Children,
		ExtraBeds:       r.ExtraBeds,
		ExtraBedRate:    r.ExtraBedRate,
		SpecialRequests: r.SpecialRequests,
		ClientID:        r.ClientID,
		PaymentMethod:   r.PaymentMethod,
		PaymentStatus:   r.PaymentStatus,
		Amount:          r.Amount,
		TermsAccepted:   r.TermsAccepted != 0,
	}

	if r.CheckInDate != "" {
		checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
		if err != nil {
			return nil, fmt.Errorf("parse check_in_date: %w", err)
		}
		req.CheckInDate = checkIn
	}

	if r.CheckOutDate != "" {
		checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("parse check_out_date: %w", err)
		}
		req.CheckOutDate = checkOut
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	termsAccepted := 0
	if resp.TermsAccepted {
		termsAccepted = 1
	}

	return &BookingResponse{
		ID:               resp.ID,
		BookingReference: resp.Reference,
		Status:           resp.Status,
		RoomNumber:       resp.RoomNumber,
		RoomType:         resp.RoomType,
		CheckInDate:      resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     resp.CheckOutDate.Format(domain.DateFormat),
		Nights:           resp.Nights,
		Adults:           resp.Adults,
		Children:         resp.Children,
		ExtraBeds:        resp.ExtraBeds,
		ExtraBedRate:     resp.ExtraBedRate,
		SpecialRequests:  resp.SpecialRequests,
		ClientID:         resp.ClientID,
		ClientName:       resp.ClientName,
		PaymentMethod:    resp.PaymentMethod,
		PaymentStatus:    resp.PaymentStatus,
		Amount:           resp.Amount,
		SubtotalRoom:     resp.SubtotalRoom,
		SubtotalExtraBed: resp.SubtotalExtraBeds,
		TotalAmount:      resp.TotalAmount,
		TermsAccepted:    termsAccepted,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
