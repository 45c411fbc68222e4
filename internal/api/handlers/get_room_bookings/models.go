package get_room_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
	"github.com/stayforge/booking-service/internal/service/bookings/models"
)

// BookingItem is one booking in the listing.
type BookingItem struct {
	ID               int64   `json:"id"`
	BookingReference string  `json:"booking_reference"`
	Status           string  `json:"status"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	Nights           int     `json:"nights"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	ExtraBeds        int     `json:"extra_beds"`
	ClientID         int64   `json:"client_id"`
	TotalAmount      float64 `json:"total_amount"`
}

// RoomBookingsResponse is the listing for one room.
type RoomBookingsResponse struct {
	RoomNumber string         `json:"room_number"`
	Bookings   []*BookingItem `json:"bookings"`
	Total      int            `json:"total"`
}

// ParseQuery builds the service request from query parameters:
// from, to (YYYY-MM-DD), status, include_inactive.
func ParseQuery(roomNumber string, query map[string][]string) (*models.GetRoomBookingsRequest, error) {
	req := &models.GetRoomBookingsRequest{
		RoomNumber: roomNumber,
	}

	if raw := first(query, "from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q", raw)
		}
		req.StartDate = &from
	}

	if raw := first(query, "to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %q", raw)
		}
		req.EndDate = &to
	}

	if raw := first(query, "status"); raw != "" {
		status := raw
		req.Status = &status
	}

	if raw := first(query, "include_inactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid include_inactive value %q", raw)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

func first(query map[string][]string, key string) string {
	if values := query[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// FromServiceResponse converts the service listing into the HTTP model.
func FromServiceResponse(roomNumber string, resp *models.BookingListResponse) *RoomBookingsResponse {
	result := &RoomBookingsResponse{
		RoomNumber: roomNumber,
		Bookings:   make([]*BookingItem, 0, len(resp.Bookings)),
		Total:      resp.Total,
	}

	for _, b := range resp.Bookings {
		result.Bookings = append(result.Bookings, &BookingItem{
			ID:               b.ID,
			BookingReference: b.Reference,
			Status:           b.Status,
			CheckInDate:      b.CheckInDate.Format(domain.DateFormat),
			CheckOutDate:     b.CheckOutDate.Format(domain.DateFormat),
			Nights:           b.Nights,
			Adults:           b.Adults,
			Children:         b.Children,
			ExtraBeds:        b.ExtraBeds,
			ClientID:         b.ClientID,
			TotalAmount:      b.TotalAmount,
		})
	}

	return result
}
