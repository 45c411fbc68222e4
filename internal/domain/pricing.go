package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPricingInput is returned when ComputeTotal receives structurally
// invalid numbers. Upstream form validation should make this unreachable, so
// callers treat it as a programming error and propagate rather than coerce.
var ErrInvalidPricingInput = errors.New("pricing: invalid input")

// PricingInput carries the factors of a stay price.
type PricingInput struct {
	NightlyRate  float64
	Nights       int
	ExtraBeds    int
	ExtraBedRate float64
}

// PricingResult is the computed price breakdown. All values are
// non-negative and Total = SubtotalRoom + SubtotalExtraBeds.
type PricingResult struct {
	SubtotalRoom      float64
	SubtotalExtraBeds float64
	Total             float64
}

// ComputeTotal calculates the stay price:
//
//	subtotalRoom      = nights * nightlyRate
//	subtotalExtraBeds = extraBeds * extraBedRate * nights (0 when no beds)
//
// Money is plain float64, matching the documented formulas; switching to
// integer minor units would be a separate contract-preserving change.
func ComputeTotal(in PricingInput) (PricingResult, error) {
	if in.NightlyRate <= 0 {
		return PricingResult{}, fmt.Errorf("%w: nightly rate must be positive, got %v", ErrInvalidPricingInput, in.NightlyRate)
	}
	if in.Nights < 1 {
		return PricingResult{}, fmt.Errorf("%w: nights must be at least 1, got %d", ErrInvalidPricingInput, in.Nights)
	}
	if in.ExtraBeds < 0 {
		return PricingResult{}, fmt.Errorf("%w: extra beds must not be negative, got %d", ErrInvalidPricingInput, in.ExtraBeds)
	}
	if in.ExtraBedRate < 0 {
		return PricingResult{}, fmt.Errorf("%w: extra bed rate must not be negative, got %v", ErrInvalidPricingInput, in.ExtraBedRate)
	}

	result := PricingResult{
		SubtotalRoom: float64(in.Nights) * in.NightlyRate,
	}

	if in.ExtraBeds > 0 {
		result.SubtotalExtraBeds = float64(in.ExtraBeds) * in.ExtraBedRate * float64(in.Nights)
	}

	result.Total = result.SubtotalRoom + result.SubtotalExtraBeds

	return result, nil
}
