package domain

import "time"

// Room represents a bookable hotel room together with the snapshot of its
// existing reservations. The room catalogue is owned by storage; this type
// only reads it.
type Room struct {
	RoomNumber   string
	RoomType     string
	NightlyRate  float64
	ExtraBedRate float64

	// Bookings holds the active reservation ranges for this room as of the
	// moment the snapshot was loaded. May be nil or empty.
	Bookings []DateRange

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable reports whether the room is free for the full requested range.
// A room with no known reservations is treated as available (fail-open; the
// authoritative conflict check happens in the database transaction).
// Staleness of the snapshot is the caller's concern.
func (r *Room) IsAvailable(requested DateRange) bool {
	for _, b := range r.Bookings {
		if requested.Overlaps(b) {
			return false
		}
	}
	return true
}
