package list_rooms

import (
	"github.com/stayforge/booking-service/internal/domain"
)

// BookedRange is one occupied window, half-open on the check-out date.
type BookedRange struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

// RoomItem is one room in the listing.
type RoomItem struct {
	RoomNumber   string        `json:"room_number"`
	RoomType     string        `json:"room_type"`
	NightlyRate  float64       `json:"nightly_rate"`
	ExtraBedRate float64       `json:"extra_bed_rate"`
	BookedRanges []BookedRange `json:"booked_ranges"`
}

// ListRoomsResponse is the full room listing.
type ListRoomsResponse struct {
	Rooms []*RoomItem `json:"rooms"`
	Total int         `json:"total"`
}

// FromDomainRooms converts domain rooms into the HTTP model.
func FromDomainRooms(rooms []*domain.Room) *ListRoomsResponse {
	result := &ListRoomsResponse{
		Rooms: make([]*RoomItem, 0, len(rooms)),
		Total: len(rooms),
	}

	for _, room := range rooms {
		item := &RoomItem{
			RoomNumber:   room.RoomNumber,
			RoomType:     room.RoomType,
			NightlyRate:  room.NightlyRate,
			ExtraBedRate: room.ExtraBedRate,
			BookedRanges: make([]BookedRange, 0, len(room.Bookings)),
		}
		for _, booked := range room.Bookings {
			item.BookedRanges = append(item.BookedRanges, BookedRange{
				CheckInDate:  booked.CheckIn.Format(domain.DateFormat),
				CheckOutDate: booked.CheckOut.Format(domain.DateFormat),
			})
		}
		result.Rooms = append(result.Rooms, item)
	}

	return result
}
