package get_owner_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/staymarket/booking-service/internal/api/handlers"
	"github.com/staymarket/booking-service/internal/api/middleware"
	"github.com/staymarket/booking-service/internal/service/bookings"
	"github.com/staymarket/booking-service/internal/service/bookings/models"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidStatus  = "некорректный статус бронирования"
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidPage    = "некорректные параметры пагинации"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/bookings?hotelId=1&status=pending&page=1&pageSize=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /owners/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetOwnerBookingsRequest{OwnerID: ownerID}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if hotelIDStr := query.Get("hotelId"); hotelIDStr != "" {
		hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
		if err != nil || hotelID <= 0 {
			h.logger.Warn("GET /owners/bookings - Invalid hotel ID: %s", hotelIDStr)
			handlers.RespondBadRequest(w, msgInvalidHotelID)
			return
		}
		req.HotelID = &hotelID
	}

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("pageSize"))
	if err != nil {
		h.logger.Warn("GET /owners/bookings - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}
	req.Page = page
	req.PageSize = pageSize

	result, err := h.service.GetOwnerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /owners/bookings - Invalid status: owner_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /owners/bookings - Access denied: owner_id=%d, hotel_id=%v", ownerID, req.HotelID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /owners/bookings - Failed to get bookings: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/bookings - Retrieved %d bookings for owner_id=%d", len(result.Bookings), ownerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parsePagination разбирает опциональные query-параметры пагинации
func parsePagination(pageStr, pageSizeStr string) (uint64, uint64, error) {
	var page, pageSize uint64

	if pageStr != "" {
		parsed, err := strconv.ParseUint(pageStr, 10, 64)
		if err != nil || parsed == 0 {
			return 0, 0, errors.New("invalid page")
		}
		page = parsed
	}

	if pageSizeStr != "" {
		parsed, err := strconv.ParseUint(pageSizeStr, 10, 64)
		if err != nil || parsed == 0 {
			return 0, 0, errors.New("invalid pageSize")
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}
