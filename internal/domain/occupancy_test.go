package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveExtraBeds(t *testing.T) {
	tests := []struct {
		name         string
		adults       int
		children     int
		previousBeds int
		wantBeds     int
		wantNotice   bool
		wantMessage  string
	}{
		{
			name:   "four guests no bed stays untouched",
			adults: 2, children: 2, previousBeds: 0,
			wantBeds: 0, wantNotice: false,
		},
		{
			name:   "three guests no bed stays untouched",
			adults: 3, children: 0, previousBeds: 0,
			wantBeds: 0, wantNotice: false,
		},
		{
			name:   "five guests forces one bed",
			adults: 3, children: 2, previousBeds: 0,
			wantBeds: 1, wantNotice: true, wantMessage: MsgExtraBedAdded,
		},
		{
			name:   "six guests forces one bed",
			adults: 4, children: 2, previousBeds: 0,
			wantBeds: 1, wantNotice: true, wantMessage: MsgExtraBedAdded,
		},
		{
			name:   "seven guests forces one bed",
			adults: 5, children: 2, previousBeds: 0,
			wantBeds: 1, wantNotice: true, wantMessage: MsgExtraBedAdded,
		},
		{
			name:   "five guests with bed already present keeps it",
			adults: 3, children: 2, previousBeds: 1,
			wantBeds: 1, wantNotice: true,
		},
		{
			name:   "five guests with two beds keeps them",
			adults: 3, children: 2, previousBeds: 2,
			wantBeds: 2, wantNotice: true,
		},
		{
			name:   "dropping back to four removes a single bed",
			adults: 2, children: 2, previousBeds: 1,
			wantBeds: 0, wantNotice: false, wantMessage: MsgExtraBedRemoved,
		},
		{
			name:   "dropping back to four keeps two beds",
			adults: 2, children: 2, previousBeds: 2,
			wantBeds: 2, wantNotice: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveExtraBeds(OccupancyRequest{Adults: tt.adults, Children: tt.children}, tt.previousBeds)
			assert.Equal(t, tt.wantBeds, got.ExtraBeds)
			assert.Equal(t, tt.wantNotice, got.NoticeVisible)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestAdjustExtraBeds(t *testing.T) {
	assert.Equal(t, 1, AdjustExtraBeds(0, BedIncrement))
	assert.Equal(t, 3, AdjustExtraBeds(2, BedIncrement))
	assert.Equal(t, 3, AdjustExtraBeds(3, BedIncrement), "increment above max is a no-op")
	assert.Equal(t, 1, AdjustExtraBeds(2, BedDecrement))
	assert.Equal(t, 0, AdjustExtraBeds(0, BedDecrement), "decrement below zero is a no-op")
	assert.Equal(t, 2, AdjustExtraBeds(2, BedAdjustment("unknown")), "unknown action is a no-op")
}

func TestMaxOccupants(t *testing.T) {
	assert.Equal(t, 4, MaxOccupants(0))
	assert.Equal(t, 5, MaxOccupants(1))
	assert.Equal(t, 7, MaxOccupants(3))
}

func TestValidateOccupancy(t *testing.T) {
	// For any bed count, capacity is a hard boundary: 4+e passes, 4+e+1 fails.
	for e := 0; e <= MaxExtraBeds; e++ {
		t.Run(fmt.Sprintf("beds=%d", e), func(t *testing.T) {
			atCapacity := OccupancyRequest{Adults: BaseOccupancy + e, Children: 0, ExtraBeds: e}
			assert.NoError(t, ValidateOccupancy(atCapacity))

			over := OccupancyRequest{Adults: BaseOccupancy + e + 1, Children: 0, ExtraBeds: e}
			err := ValidateOccupancy(over)
			assert.Error(t, err)
		})
	}
}

func TestValidateOccupancy_MandatoryExtraBed(t *testing.T) {
	err := ValidateOccupancy(OccupancyRequest{Adults: 3, Children: 2, ExtraBeds: 0})
	assert.ErrorContains(t, err, "requires at least 1 extra bed")

	assert.NoError(t, ValidateOccupancy(OccupancyRequest{Adults: 3, Children: 2, ExtraBeds: 1}))
}

func TestValidateOccupancy_MessageIncludesCapacity(t *testing.T) {
	err := ValidateOccupancy(OccupancyRequest{Adults: 5, Children: 2, ExtraBeds: 2})
	assert.ErrorContains(t, err, "maximum occupancy is 6")
	assert.ErrorContains(t, err, "2 extra bed(s)")
}
