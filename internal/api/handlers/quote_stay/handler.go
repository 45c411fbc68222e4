package quote_stay

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stayforge/booking-service/internal/api/handlers"
	quoteStay "github.com/stayforge/booking-service/internal/usecase/quote_stay"
)

const (
	msgInvalidQuery      = "invalid query parameters, expected check_in and check_out as YYYY-MM-DD"
	msgRoomNotFound      = "room not found"
	msgOccupancyExceeded = "requested occupancy exceeds room capacity"
)

type Handler struct {
	useCase QuoteStayUseCase
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomNumber}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomNumber := mux.Vars(r)["roomNumber"]

	req, err := parseQuery(roomNumber, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/{roomNumber}/quote - invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomNumber}/quote - room not found: room=%s", roomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomNumber}/quote - invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, quoteStay.ErrOccupancyExceeded):
			h.logger.Warn("GET /rooms/{roomNumber}/quote - occupancy exceeded: room=%s", roomNumber)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOccupancyExceeded)

		default:
			h.logger.Error("GET /rooms/{roomNumber}/quote - failed: room=%s, error=%v", roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
