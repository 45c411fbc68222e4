package quote_stay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stayforge/booking-service/internal/domain"
	roomRepo "github.com/stayforge/booking-service/internal/infra/storage/room"
)

// UseCase produces an availability and price quote for a requested stay.
// The quote runs against the room snapshot it loads; it makes no reservation
// and offers no consistency guarantee beyond that snapshot.
type UseCase struct {
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the request, derives the extra bed count from the
// occupancy and prices the stay.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteStay: room=%s, check_in=%s, check_out=%s, adults=%d, children=%d, extra_beds=%d",
		req.RoomNumber,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat),
		req.Adults, req.Children, req.ExtraBeds)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("QuoteStay: validation failed: %v", err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("QuoteStay: room %s not found", req.RoomNumber)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("QuoteStay: failed to get room %s: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	stay := domain.DateRange{CheckIn: req.CheckInDate, CheckOut: req.CheckOutDate}

	// Re-derive the extra bed count from the occupancy, then verify the
	// guests actually fit.
	occupancy := domain.OccupancyRequest{Adults: req.Adults, Children: req.Children}
	decision := domain.DeriveExtraBeds(occupancy, req.ExtraBeds)
	occupancy.ExtraBeds = decision.ExtraBeds

	if err := domain.ValidateOccupancy(occupancy); err != nil {
		uc.logger.Warn("QuoteStay: occupancy check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrOccupancyExceeded, err)
	}

	pricing, err := domain.ComputeTotal(domain.PricingInput{
		NightlyRate:  room.NightlyRate,
		Nights:       stay.Nights(),
		ExtraBeds:    decision.ExtraBeds,
		ExtraBedRate: room.ExtraBedRate,
	})
	if err != nil {
		uc.logger.Error("QuoteStay: pricing failed for room %s: %v", room.RoomNumber, err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	available := room.IsAvailable(stay)

	uc.logger.Info("QuoteStay: room=%s available=%t nights=%d extra_beds=%d total=%.2f",
		room.RoomNumber, available, stay.Nights(), decision.ExtraBeds, pricing.Total)

	return &Response{
		RoomNumber:        room.RoomNumber,
		RoomType:          room.RoomType,
		CheckInDate:       req.CheckInDate,
		CheckOutDate:      req.CheckOutDate,
		Nights:            stay.Nights(),
		Available:         available,
		ExtraBeds:         decision.ExtraBeds,
		ExtraBedNotice:    decision.Message,
		MaxOccupants:      domain.MaxOccupants(decision.ExtraBeds),
		NightlyRate:       room.NightlyRate,
		ExtraBedRate:      room.ExtraBedRate,
		SubtotalRoom:      pricing.SubtotalRoom,
		SubtotalExtraBeds: pricing.SubtotalExtraBeds,
		Total:             pricing.Total,
	}, nil
}

func validateRequest(req *Request, now time.Time) error {
	if req.RoomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrInvalidInput)
	}
	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: checkInDate is required", ErrInvalidInput)
	}
	if req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: checkOutDate is required", ErrInvalidInput)
	}

	stay := domain.DateRange{CheckIn: req.CheckInDate, CheckOut: req.CheckOutDate}
	if !stay.IsValid() {
		return fmt.Errorf("%w: checkOutDate must be after checkInDate", ErrInvalidInput)
	}
	if stay.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}
	if domain.TruncateToDay(req.CheckInDate).Before(domain.TruncateToDay(now)) {
		return fmt.Errorf("%w: checkInDate must not be in the past", ErrInvalidInput)
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}
	if req.Children < domain.MinChildren {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}
	if req.ExtraBeds < domain.MinExtraBeds || req.ExtraBeds > domain.MaxExtraBeds {
		return fmt.Errorf("%w: extraBeds must be between %d and %d", ErrInvalidInput, domain.MinExtraBeds, domain.MaxExtraBeds)
	}

	return nil
}
