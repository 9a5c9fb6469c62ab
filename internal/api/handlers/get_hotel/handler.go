package get_hotel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/staymarket/booking-service/internal/api/handlers"
	"github.com/staymarket/booking-service/internal/service/hotels"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgNotFound       = "отель не найден"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	hotel, err := h.service.GetByID(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id} - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /hotels/{id} - Failed to get hotel: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id} - Hotel retrieved successfully: hotel_id=%d", hotelID)
	handlers.RespondJSON(w, http.StatusOK, hotel)
}
