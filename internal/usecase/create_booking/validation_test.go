package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stayforge/booking-service/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRooms() []*domain.Room {
	return []*domain.Room{
		{
			RoomNumber:   "101",
			RoomType:     "double",
			NightlyRate:  2000,
			ExtraBedRate: 500,
		},
		{
			RoomNumber:   "102",
			RoomType:     "suite",
			NightlyRate:  3500,
			ExtraBedRate: 500,
			Bookings: []domain.DateRange{
				{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 5)},
			},
		},
	}
}

func validForm() *Request {
	return &Request{
		RoomNumber:    "101",
		RoomType:      "double",
		CheckInDate:   date(2025, 6, 1),
		CheckOutDate:  date(2025, 6, 4),
		Adults:        2,
		Children:      0,
		ExtraBeds:     0,
		ExtraBedRate:  500,
		ClientID:      7,
		PaymentMethod: "card",
		PaymentStatus: "paid",
		Amount:        6000,
		TermsAccepted: true,
	}
}

var today = date(2025, 5, 20)

func TestValidateForm_Valid(t *testing.T) {
	fields := ValidateForm(validForm(), testRooms(), today)
	assert.Empty(t, fields)
}

// Scenario: 3 nights at 2000/night, 2 adults, no extra beds. The form passes
// and the computed total is 6000.
func TestValidateForm_ThreeNightStay(t *testing.T) {
	form := validForm()
	fields := ValidateForm(form, testRooms(), today)
	assert.Empty(t, fields)

	pricing, err := domain.ComputeTotal(domain.PricingInput{
		NightlyRate:  2000,
		Nights:       form.stay().Nights(),
		ExtraBeds:    form.ExtraBeds,
		ExtraBedRate: form.ExtraBedRate,
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(6000), pricing.Total)
}

// Scenario: raising occupancy to 5 forces one extra bed, which adds
// 500/night to the 3-night stay: total 7500.
func TestValidateForm_FiveGuestsWithDerivedBed(t *testing.T) {
	form := validForm()
	form.Adults = 3
	form.Children = 2

	decision := domain.DeriveExtraBeds(form.occupancy(), form.ExtraBeds)
	assert.Equal(t, 1, decision.ExtraBeds)
	assert.Equal(t, domain.MsgExtraBedAdded, decision.Message)
	form.ExtraBeds = decision.ExtraBeds

	fields := ValidateForm(form, testRooms(), today)
	assert.Empty(t, fields)

	pricing, err := domain.ComputeTotal(domain.PricingInput{
		NightlyRate:  2000,
		Nights:       form.stay().Nights(),
		ExtraBeds:    form.ExtraBeds,
		ExtraBedRate: form.ExtraBedRate,
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(1500), pricing.SubtotalExtraBeds)
	assert.Equal(t, float64(7500), pricing.Total)
}

// Scenario: requesting a range inside an existing stay sets a distinct
// availability error while leaving the date fields clean.
func TestValidateForm_AvailabilityConflict(t *testing.T) {
	form := validForm()
	form.RoomNumber = "102"
	form.RoomType = "suite"
	form.CheckInDate = date(2025, 6, 2)
	form.CheckOutDate = date(2025, 6, 3)

	fields := ValidateForm(form, testRooms(), today)
	assert.Contains(t, fields, "availability")
	assert.Contains(t, fields["availability"], "102")
	assert.NotContains(t, fields, "checkInDate")
	assert.NotContains(t, fields, "checkOutDate")
}

// Scenario: check-out equal to check-in.
func TestValidateForm_CheckOutEqualsCheckIn(t *testing.T) {
	form := validForm()
	form.CheckOutDate = form.CheckInDate

	fields := ValidateForm(form, testRooms(), today)
	assert.Equal(t, "Check-out date must be after check-in date", fields["checkOutDate"])
}

func TestValidateForm_StayLengthBoundary(t *testing.T) {
	form := validForm()
	form.CheckOutDate = form.CheckInDate.AddDate(0, 0, 30)
	assert.Empty(t, ValidateForm(form, testRooms(), today), "a 30-night stay passes")

	form.CheckOutDate = form.CheckInDate.AddDate(0, 0, 31)
	fields := ValidateForm(form, testRooms(), today)
	assert.Equal(t, msgStayTooLong, fields["checkOutDate"], "a 31-night stay fails")
}

func TestValidateForm_RequiredFields(t *testing.T) {
	fields := ValidateForm(&Request{}, testRooms(), today)

	// All failing fields are reported in one pass, not just the first.
	for _, key := range []string{
		"roomNumber", "roomType", "clientId", "paymentMethod", "paymentStatus",
		"termsAccepted", "checkInDate", "checkOutDate", "adults", "amount",
	} {
		assert.Contains(t, fields, key, "missing error for %s", key)
	}
}

func TestValidateForm_UnknownRoom(t *testing.T) {
	form := validForm()
	form.RoomNumber = "999"

	fields := ValidateForm(form, testRooms(), today)
	assert.Equal(t, msgRoomUnknown, fields["roomNumber"])
	assert.NotContains(t, fields, "availability", "availability is skipped without a known room")
}

func TestValidateForm_CheckInInPast(t *testing.T) {
	form := validForm()
	form.CheckInDate = today.AddDate(0, 0, -1)
	form.CheckOutDate = today.AddDate(0, 0, 2)

	fields := ValidateForm(form, testRooms(), today)
	assert.Equal(t, msgCheckInInPast, fields["checkInDate"])
}

func TestValidateForm_CheckInToday(t *testing.T) {
	form := validForm()
	form.CheckInDate = today
	form.CheckOutDate = today.AddDate(0, 0, 2)

	// Time-of-day is zeroed: a check-in later today is not "in the past".
	fields := ValidateForm(form, testRooms(), today.Add(17*time.Hour))
	assert.Empty(t, fields)
}

func TestValidateForm_OccupancyInvariants(t *testing.T) {
	form := validForm()
	form.Adults = 3
	form.Children = 2
	form.ExtraBeds = 0

	fields := ValidateForm(form, testRooms(), today)
	assert.Contains(t, fields["extraBeds"], "requires at least 1 extra bed")

	form.ExtraBeds = 1
	form.Adults = 4
	form.Children = 2 // 6 guests, capacity 5
	fields = ValidateForm(form, testRooms(), today)
	assert.Contains(t, fields["extraBeds"], "maximum occupancy is 5")
}

func TestValidateForm_ExtraBedRange(t *testing.T) {
	form := validForm()
	form.ExtraBeds = 4
	fields := ValidateForm(form, testRooms(), today)
	assert.Equal(t, msgExtraBedsOutOfRange, fields["extraBeds"])

	form.ExtraBeds = -1
	fields = ValidateForm(form, testRooms(), today)
	assert.Equal(t, msgExtraBedsOutOfRange, fields["extraBeds"])
}

func TestValidateForm_ZeroPricedRoom(t *testing.T) {
	rooms := []*domain.Room{{RoomNumber: "101", RoomType: "double", NightlyRate: 0}}

	fields := ValidateForm(validForm(), rooms, today)
	assert.Equal(t, msgTotalInvalid, fields["totalAmount"])
}
