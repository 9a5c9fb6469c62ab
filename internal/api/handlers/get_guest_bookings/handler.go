package get_guest_bookings

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
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
	msgInvalidPage   = "некорректные параметры пагинации"
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

// Handle GET /api/v1/guests/bookings?status=pending&page=1&pageSize=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /guests/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetGuestBookingsRequest{GuestID: guestID}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("pageSize"))
	if err != nil {
		h.logger.Warn("GET /guests/bookings - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}
	req.Page = page
	req.PageSize = pageSize

	result, err := h.service.GetGuestBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /guests/bookings - Invalid status: guest_id=%d", guestID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /guests/bookings - Failed to get bookings: guest_id=%d, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guests/bookings - Retrieved %d bookings for guest_id=%d", len(result.Bookings), guestID)
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
