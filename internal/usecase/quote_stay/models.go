package quote_stay

import "time"

// Request asks for an availability and price quote for one room and stay.
// ExtraBeds is the count currently on the form; the quote re-derives it
// from the occupancy before pricing.
type Request struct {
	RoomNumber   string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Adults       int
	Children     int
	ExtraBeds    int
}

// Response is the quote: whether the room is free for the range, the extra
// bed count the occupancy requires, and the resulting price breakdown.
type Response struct {
	RoomNumber   string
	RoomType     string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Nights       int

	Available bool

	ExtraBeds      int
	ExtraBedNotice string
	MaxOccupants   int

	NightlyRate       float64
	ExtraBedRate      float64
	SubtotalRoom      float64
	SubtotalExtraBeds float64
	Total             float64
}
