package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/stayforge/booking-service/internal/domain"
	guestClient "github.com/stayforge/booking-service/internal/integrations/guestdirectory"
	"github.com/stayforge/booking-service/pkg/ptr"
)

// UseCase creates hotel bookings: one full validation pass over the form,
// then an availability re-check and the insert inside a serializable
// transaction. The re-check is what actually prevents double booking; the
// validation pass runs against a snapshot that may already be stale.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	guestClient  GuestDirectoryClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	guestClient GuestDirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		guestClient:  guestClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the form and creates the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, client=%d, check_in=%s, check_out=%s, adults=%d, children=%d, extra_beds=%d",
		req.RoomNumber, req.ClientID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat),
		req.Adults, req.Children, req.ExtraBeds)

	now := uc.timeProvider.Now()

	// 1. Load the room catalogue snapshot the validation pass runs against.
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 2. Full validation pass; every failing field is reported at once.
	if fields := ValidateForm(req, rooms, now); len(fields) > 0 {
		uc.logger.Warn("CreateBooking: validation failed: %d field(s)", len(fields))
		return nil, &ValidationError{Fields: fields}
	}

	room := findRoom(rooms, req.RoomNumber)

	// 3. Resolve the client in the guest directory.
	client, err := uc.guestClient.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, guestClient.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if !client.IsActive() {
		uc.logger.Warn("CreateBooking: client id=%d is not active (status=%s)", client.ID, client.Status)
		return nil, ErrClientInactive
	}

	// 4. Price the stay.
	stay := req.stay()
	pricing, err := domain.ComputeTotal(domain.PricingInput{
		NightlyRate:  room.NightlyRate,
		Nights:       stay.Nights(),
		ExtraBeds:    req.ExtraBeds,
		ExtraBedRate: req.ExtraBedRate,
	})
	if err != nil {
		// Unreachable after a clean validation pass; propagate, never coerce.
		uc.logger.Error("CreateBooking: pricing failed after validation: %v", err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Re-check availability and insert in one serializable transaction.
	// The snapshot used by the validation pass offers no guarantee stronger
	// than "correct as of the moment it was loaded".
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByRoomWithFilter(txCtx, domain.RoomBookingsFilter{
			RoomNumber:      req.RoomNumber,
			StartDate:       ptr.Ptr(req.CheckInDate),
			EndDate:         ptr.Ptr(req.CheckOutDate),
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		for _, b := range existing {
			if b.IsActive() && stay.Overlaps(b.Range()) {
				uc.logger.Warn("CreateBooking: room %s conflicts with booking id=%d (%s - %s)",
					req.RoomNumber, b.ID,
					b.CheckInDate.Format(domain.DateFormat), b.CheckOutDate.Format(domain.DateFormat))
				return ErrRoomNotAvailable
			}
		}

		booking := &domain.Booking{
			Reference:       domain.NewBookingReference(now),
			RoomNumber:      req.RoomNumber,
			RoomType:        req.RoomType,
			CheckInDate:     req.CheckInDate,
			CheckOutDate:    req.CheckOutDate,
			Adults:          req.Adults,
			Children:        req.Children,
			ExtraBeds:       req.ExtraBeds,
			ExtraBedRate:    req.ExtraBedRate,
			SpecialRequests: req.SpecialRequests,
			ClientID:        req.ClientID,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   req.PaymentStatus,
			Amount:          req.Amount,
			TotalAmount:     pricing.Total,
			TermsAccepted:   req.TermsAccepted,
			Status:          domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d reference=%s total=%.2f",
		result.ID, result.Reference, result.TotalAmount)

	return &Response{
		ID:                result.ID,
		Reference:         result.Reference,
		Status:            string(result.Status),
		RoomNumber:        result.RoomNumber,
		RoomType:          result.RoomType,
		CheckInDate:       result.CheckInDate,
		CheckOutDate:      result.CheckOutDate,
		Nights:            stay.Nights(),
		Adults:            result.Adults,
		Children:          result.Children,
		ExtraBeds:         result.ExtraBeds,
		ExtraBedRate:      result.ExtraBedRate,
		SpecialRequests:   result.SpecialRequests,
		ClientID:          result.ClientID,
		ClientName:        client.Name,
		PaymentMethod:     result.PaymentMethod,
		PaymentStatus:     result.PaymentStatus,
		Amount:            result.Amount,
		TermsAccepted:     result.TermsAccepted,
		SubtotalRoom:      pricing.SubtotalRoom,
		SubtotalExtraBeds: pricing.SubtotalExtraBeds,
		TotalAmount:       result.TotalAmount,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
