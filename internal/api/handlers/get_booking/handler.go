package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/stayforge/booking-service/internal/api/handlers"
	"github.com/stayforge/booking-service/internal/service/bookings"
	"github.com/stayforge/booking-service/internal/service/bookings/models"
)

const (
	msgBookingIDRequired = "booking id is required"
	msgBookingNotFound   = "booking not found"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
//
// The path segment is either a numeric booking id or a booking
// reference of the form BK-<millis>-<suffix>.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["bookingId"]
	if raw == "" {
		handlers.RespondBadRequest(w, msgBookingIDRequired)
		return
	}

	var resp *models.BookingResponse
	var err error

	if id, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
		resp, err = h.service.GetByID(r.Context(), id)
	} else {
		resp, err = h.service.GetByReference(r.Context(), raw)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - booking not found: key=%s", raw)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - failed to get booking: key=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(resp))
}
