package cancel_booking

import (
	"github.com/stayforge/booking-service/internal/service/bookings/models"
)

// CancelBookingRequest is the HTTP request body.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingResponse confirms the cancellation.
type CancelBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Reason: r.Reason,
	}
}
