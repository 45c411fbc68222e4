package domain

// Occupancy rules
const (
	// BaseOccupancy is the number of guests a room accommodates without
	// extra beds.
	BaseOccupancy = 4

	// ExtraBedCapacity is how many additional guests one extra bed allows.
	ExtraBedCapacity = 1

	MinExtraBeds = 0
	MaxExtraBeds = 3

	MinAdults   = 1
	MinChildren = 0
)

// Stay length limits, in nights.
const (
	MinStayNights = 1
	MaxStayNights = 30
)

const (
	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses are the booking statuses that do not block a room.
// Used when collecting existing stays for an availability check.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses are the booking statuses that occupy a room for their
// date range.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
}
