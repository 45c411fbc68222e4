package list_rooms

import (
	"net/http"

	"github.com/stayforge/booking-service/internal/api/handlers"
)

type Handler struct {
	roomRepo RoomRepository
	logger   Logger
}

func NewHandler(roomRepo RoomRepository, logger Logger) *Handler {
	return &Handler{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomRepo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - fetched %d rooms", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, FromDomainRooms(rooms))
}
