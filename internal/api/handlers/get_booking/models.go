package get_booking

import (
	"time"

	"github.com/stayforge/booking-service/internal/domain"
	"github.com/stayforge/booking-service/internal/service/bookings/models"
)

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
	PaymentMethod    string  `json:"payment_method"`
	PaymentStatus    string  `json:"payment_status"`
	Amount           float64 `json:"amount"`
	TotalAmount      float64 `json:"total_amount"`

	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FromServiceResponse converts the service model into the HTTP model.
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                 resp.ID,
		BookingReference:   resp.Reference,
		Status:             resp.Status,
		RoomNumber:         resp.RoomNumber,
		RoomType:           resp.RoomType,
		CheckInDate:        resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:       resp.CheckOutDate.Format(domain.DateFormat),
		Nights:             resp.Nights,
		Adults:             resp.Adults,
		Children:           resp.Children,
		ExtraBeds:          resp.ExtraBeds,
		ExtraBedRate:       resp.ExtraBedRate,
		SpecialRequests:    resp.SpecialRequests,
		ClientID:           resp.ClientID,
		PaymentMethod:      resp.PaymentMethod,
		PaymentStatus:      resp.PaymentStatus,
		Amount:             resp.Amount,
		TotalAmount:        resp.TotalAmount,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
