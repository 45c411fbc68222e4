package create_booking

import (
	"errors"
	"net/http"

	"github.com/stayforge/booking-service/internal/api/handlers"
	createBooking "github.com/stayforge/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgClientNotFound     = "client not found"
	msgClientInactive     = "client is not active"
	msgAvailabilityTaken  = "Room is not available for the selected dates. Please choose different dates or another room."
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var vErr *createBooking.ValidationError

		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - validation failed: room=%s, client=%d, fields=%d",
				req.RoomNumber, req.ClientID, len(vErr.Fields))
			handlers.RespondValidationErrors(w, http.StatusUnprocessableEntity, vErr.Fields)

		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			// Race on availability: the snapshot was clean but the
			// transactional re-check found a conflict. Same field shape as
			// client-side validation, so the form re-renders uniformly.
			h.logger.Warn("POST /bookings - room not available: room=%s, client=%d", req.RoomNumber, req.ClientID)
			if h.metrics != nil {
				h.metrics.IncBookingConflict()
			}
			handlers.RespondValidationErrors(w, http.StatusConflict, map[string]string{
				"availability": msgAvailabilityTaken,
			})

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - client not found: client=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrClientInactive):
			h.logger.Warn("POST /bookings - client inactive: client=%d", req.ClientID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgClientInactive)

		default:
			h.logger.Error("POST /bookings - failed to create booking: room=%s, client=%d, error=%v",
				req.RoomNumber, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.IncBookingCreated()
	}

	h.logger.Info("POST /bookings - booking created: id=%d, reference=%s, room=%s",
		result.ID, result.Reference, result.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
