package get_room_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stayforge/booking-service/internal/api/handlers"
	"github.com/stayforge/booking-service/internal/service/bookings"
)

const (
	msgRoomNumberRequired = "room number is required"
	msgUnknownStatus      = "unknown booking status"
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

// Handle GET /api/v1/rooms/{roomNumber}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomNumber := mux.Vars(r)["roomNumber"]
	if roomNumber == "" {
		handlers.RespondBadRequest(w, msgRoomNumberRequired)
		return
	}

	req, err := ParseQuery(roomNumber, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/{roomNumber}/bookings - bad query: room=%s, error=%v", roomNumber, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetRoomBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgRoomNumberRequired)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /rooms/{roomNumber}/bookings - unknown status: room=%s", roomNumber)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		default:
			h.logger.Error("GET /rooms/{roomNumber}/bookings - failed: room=%s, error=%v", roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomNumber}/bookings - fetched %d bookings: room=%s", result.Total, roomNumber)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(roomNumber, result))
}
