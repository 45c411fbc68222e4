package create_booking

import (
	"fmt"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
)

// Form field error messages.
const (
	msgRoomRequired          = "Please select a room"
	msgRoomUnknown           = "Selected room was not found"
	msgRoomTypeRequired      = "Please select a room type"
	msgClientRequired        = "Please select a client"
	msgPaymentMethodRequired = "Please select a payment method"
	msgPaymentStatusRequired = "Please select a payment status"
	msgTermsRequired         = "You must accept the terms and conditions"

	msgCheckInRequired  = "Check-in date is required"
	msgCheckInInPast    = "Check-in date cannot be in the past"
	msgCheckOutRequired = "Check-out date is required"
	msgCheckOutNotAfter = "Check-out date must be after check-in date"
	msgStayTooLong      = "Maximum stay duration is 30 nights"

	msgAdultsRequired     = "At least 1 adult is required"
	msgChildrenNegative   = "Children count cannot be negative"
	msgExtraBedsOutOfRange = "Extra beds must be between 0 and 3"
	msgExtraBedRateNegative = "Extra bed rate cannot be negative"

	msgAmountInvalid = "Payment amount must be greater than zero"
	msgTotalInvalid  = "Total amount must be greater than zero"
)

// ValidateForm runs one full validation pass over the booking form. Every
// check runs; the returned map carries one message per failing field, so the
// caller can surface all of them at once. An empty map means the form may be
// submitted.
//
// rooms is the room catalogue snapshot (including each room's active
// reservations); today is the operator's wall-clock date, injected so the
// pass is deterministic. Time-of-day is ignored for the past-date check.
func ValidateForm(form *Request, rooms []*domain.Room, today time.Time) FieldErrors {
	fields := FieldErrors{}
	today = domain.TruncateToDay(today)

	// Required selections.
	var room *domain.Room
	if form.RoomNumber == "" {
		fields["roomNumber"] = msgRoomRequired
	} else {
		room = findRoom(rooms, form.RoomNumber)
		if room == nil {
			fields["roomNumber"] = msgRoomUnknown
		}
	}
	if form.RoomType == "" {
		fields["roomType"] = msgRoomTypeRequired
	}
	if form.ClientID <= 0 {
		fields["clientId"] = msgClientRequired
	}
	if form.PaymentMethod == "" {
		fields["paymentMethod"] = msgPaymentMethodRequired
	}
	if form.PaymentStatus == "" {
		fields["paymentStatus"] = msgPaymentStatusRequired
	}
	if !form.TermsAccepted {
		fields["termsAccepted"] = msgTermsRequired
	}

	// Dates. rangeOK means both dates are present and ordered, so the stay
	// interval is computable even when the check-in is flagged as past.
	rangeOK := validateDates(form, today, fields)

	// Availability: only meaningful when a known room and both dates are
	// present. Conflicts get their own field so the operator can adjust the
	// dates or the room without losing the rest of the form.
	if room != nil && rangeOK {
		if !room.IsAvailable(form.stay()) {
			fields["availability"] = fmt.Sprintf(
				"Room %s is not available for the selected dates. Please choose different dates or another room.",
				room.RoomNumber)
		}
	}

	// Occupancy.
	validateOccupancyFields(form, fields)

	// Payment.
	if form.Amount <= 0 {
		fields["amount"] = msgAmountInvalid
	}
	validateComputedTotal(form, room, rangeOK, fields)

	return fields
}

func validateDates(form *Request, today time.Time, fields FieldErrors) bool {
	if form.CheckInDate.IsZero() {
		fields["checkInDate"] = msgCheckInRequired
	} else if domain.TruncateToDay(form.CheckInDate).Before(today) {
		fields["checkInDate"] = msgCheckInInPast
	}

	if form.CheckOutDate.IsZero() {
		fields["checkOutDate"] = msgCheckOutRequired
		return false
	}
	if form.CheckInDate.IsZero() {
		return false
	}

	stay := form.stay()
	if !stay.IsValid() {
		fields["checkOutDate"] = msgCheckOutNotAfter
		return false
	}
	if stay.Nights() > domain.MaxStayNights {
		fields["checkOutDate"] = msgStayTooLong
	}

	return true
}

func validateOccupancyFields(form *Request, fields FieldErrors) {
	structurallyValid := true

	if form.Adults < domain.MinAdults {
		fields["adults"] = msgAdultsRequired
		structurallyValid = false
	}
	if form.Children < domain.MinChildren {
		fields["children"] = msgChildrenNegative
		structurallyValid = false
	}
	if form.ExtraBeds < domain.MinExtraBeds || form.ExtraBeds > domain.MaxExtraBeds {
		fields["extraBeds"] = msgExtraBedsOutOfRange
		structurallyValid = false
	}
	if form.ExtraBedRate < 0 {
		fields["extraBedRate"] = msgExtraBedRateNegative
	}

	// The occupancy invariants only make sense over structurally valid counts.
	if structurallyValid {
		if err := domain.ValidateOccupancy(form.occupancy()); err != nil {
			fields["extraBeds"] = err.Error()
		}
	}
}

// validateComputedTotal recomputes the stay total and rejects the form when
// it is not positive. totalAmount is not itself a form field: an error here
// signals a computed-value failure, e.g. a zero-priced room.
func validateComputedTotal(form *Request, room *domain.Room, rangeOK bool, fields FieldErrors) {
	if room == nil || !rangeOK {
		return
	}

	result, err := domain.ComputeTotal(domain.PricingInput{
		NightlyRate:  room.NightlyRate,
		Nights:       form.stay().Nights(),
		ExtraBeds:    form.ExtraBeds,
		ExtraBedRate: form.ExtraBedRate,
	})
	if err != nil || result.Total <= 0 {
		fields["totalAmount"] = msgTotalInvalid
	}
}

func findRoom(rooms []*domain.Room, roomNumber string) *domain.Room {
	for _, r := range rooms {
		if r.RoomNumber == roomNumber {
			return r
		}
	}
	return nil
}
