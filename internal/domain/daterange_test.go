package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Nights(t *testing.T) {
	tests := []struct {
		name string
		in   DateRange
		want int
	}{
		{
			name: "single night",
			in:   DateRange{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 2)},
			want: 1,
		},
		{
			name: "three nights",
			in:   DateRange{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 4)},
			want: 3,
		},
		{
			name: "partial day rounds up",
			in: DateRange{
				CheckIn:  time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			},
			want: 1,
		},
		{
			name: "just over one day rounds to two",
			in: DateRange{
				CheckIn:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
			},
			want: 2,
		},
		{
			name: "zero length",
			in:   DateRange{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 1)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Nights())
		})
	}
}

func TestDateRange_IsValid(t *testing.T) {
	assert.True(t, DateRange{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 2)}.IsValid())
	assert.False(t, DateRange{CheckIn: date(2025, 6, 2), CheckOut: date(2025, 6, 1)}.IsValid())
	assert.False(t, DateRange{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 1)}.IsValid())
	assert.False(t, DateRange{}.IsValid())
}

func TestDateRange_Overlaps(t *testing.T) {
	existing := DateRange{CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 15)}

	tests := []struct {
		name      string
		requested DateRange
		want      bool
	}{
		{
			name:      "check-in falls inside existing stay",
			requested: DateRange{CheckIn: date(2025, 6, 12), CheckOut: date(2025, 6, 20)},
			want:      true,
		},
		{
			name:      "check-out falls inside existing stay",
			requested: DateRange{CheckIn: date(2025, 6, 5), CheckOut: date(2025, 6, 12)},
			want:      true,
		},
		{
			name:      "requested range encloses existing stay",
			requested: DateRange{CheckIn: date(2025, 6, 5), CheckOut: date(2025, 6, 20)},
			want:      true,
		},
		{
			name:      "requested range inside existing stay",
			requested: DateRange{CheckIn: date(2025, 6, 11), CheckOut: date(2025, 6, 13)},
			want:      true,
		},
		{
			name:      "identical range",
			requested: existing,
			want:      true,
		},
		{
			name:      "check-in on existing check-out day",
			requested: DateRange{CheckIn: date(2025, 6, 15), CheckOut: date(2025, 6, 18)},
			want:      false,
		},
		{
			name:      "check-out on existing check-in day",
			requested: DateRange{CheckIn: date(2025, 6, 7), CheckOut: date(2025, 6, 10)},
			want:      false,
		},
		{
			name:      "entirely before",
			requested: DateRange{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 5)},
			want:      false,
		},
		{
			name:      "entirely after",
			requested: DateRange{CheckIn: date(2025, 6, 20), CheckOut: date(2025, 6, 25)},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.requested.Overlaps(existing))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, existing.Overlaps(tt.requested))
		})
	}
}

// The half-open test must agree with the three-case enumeration it replaced:
// check-in inside, check-out inside, or full enclosure of an existing stay.
func TestDateRange_Overlaps_MatchesCaseEnumeration(t *testing.T) {
	base := date(2025, 6, 1)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	enumerated := func(req, b DateRange) bool {
		checkInInside := !req.CheckIn.Before(b.CheckIn) && req.CheckIn.Before(b.CheckOut)
		checkOutInside := req.CheckOut.After(b.CheckIn) && !req.CheckOut.After(b.CheckOut)
		encloses := !req.CheckIn.After(b.CheckIn) && !req.CheckOut.Before(b.CheckOut)
		return checkInInside || checkOutInside || encloses
	}

	for c := 0; c < 8; c++ {
		for d := c + 1; d <= 8; d++ {
			for a := 0; a < 8; a++ {
				for b := a + 1; b <= 8; b++ {
					req := DateRange{CheckIn: day(c), CheckOut: day(d)}
					existing := DateRange{CheckIn: day(a), CheckOut: day(b)}
					require.Equal(t, enumerated(req, existing), req.Overlaps(existing),
						"requested [%d,%d) vs existing [%d,%d)", c, d, a, b)
				}
			}
		}
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 6, 1, 17, 42, 13, 999, time.UTC)
	assert.Equal(t, date(2025, 6, 1), TruncateToDay(in))
}
