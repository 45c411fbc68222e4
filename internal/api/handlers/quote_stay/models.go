package quote_stay

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
	quoteStay "github.com/stayforge/booking-service/internal/usecase/quote_stay"
)

// QuoteResponse is the HTTP response model for a stay quote.
type QuoteResponse struct {
	RoomNumber   string `json:"room_number"`
	RoomType     string `json:"room_type"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Nights       int    `json:"nights"`

	Available bool `json:"available"`

	ExtraBeds      int    `json:"extra_beds"`
	ExtraBedNotice string `json:"extra_bed_notice,omitempty"`
	MaxOccupants   int    `json:"max_occupants"`

	NightlyRate       float64 `json:"nightly_rate"`
	ExtraBedRate      float64 `json:"extra_bed_rate"`
	SubtotalRoom      float64 `json:"subtotal_room"`
	SubtotalExtraBeds float64 `json:"subtotal_extra_beds"`
	TotalAmount       float64 `json:"total_amount"`
}

// parseQuery builds the use case request from the query string:
// check_in, check_out (YYYY-MM-DD, required), adults (default 1),
// children, extra_beds (default 0).
func parseQuery(roomNumber string, query url.Values) (*quoteStay.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, query.Get("check_in"))
	if err != nil {
		return nil, fmt.Errorf("parse check_in: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("check_out"))
	if err != nil {
		return nil, fmt.Errorf("parse check_out: %w", err)
	}

	adults := 1
	if raw := query.Get("adults"); raw != "" {
		if adults, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("parse adults: %w", err)
		}
	}

	children := 0
	if raw := query.Get("children"); raw != "" {
		if children, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("parse children: %w", err)
		}
	}

	extraBeds := 0
	if raw := query.Get("extra_beds"); raw != "" {
		if extraBeds, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("parse extra_beds: %w", err)
		}
	}

	return &quoteStay.Request{
		RoomNumber:   roomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       adults,
		Children:     children,
		ExtraBeds:    extraBeds,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	return &QuoteResponse{
		RoomNumber:        resp.RoomNumber,
		RoomType:          resp.RoomType,
		CheckInDate:       resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:      resp.CheckOutDate.Format(domain.DateFormat),
		Nights:            resp.Nights,
		Available:         resp.Available,
		ExtraBeds:         resp.ExtraBeds,
		ExtraBedNotice:    resp.ExtraBedNotice,
		MaxOccupants:      resp.MaxOccupants,
		NightlyRate:       resp.NightlyRate,
		ExtraBedRate:      resp.ExtraBedRate,
		SubtotalRoom:      resp.SubtotalRoom,
		SubtotalExtraBeds: resp.SubtotalExtraBeds,
		TotalAmount:       resp.Total,
	}
}
