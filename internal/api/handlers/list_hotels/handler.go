package list_hotels

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/staymarket/booking-service/internal/api/handlers"
	"github.com/staymarket/booking-service/internal/service/hotels"
	"github.com/staymarket/booking-service/internal/service/hotels/models"
)

const (
	msgInvalidPrice = "некорректная максимальная цена"
	msgInvalidPage  = "некорректные параметры пагинации"
	msgInvalidInput = "некорректные параметры запроса"
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

// Handle GET /api/v1/hotels?search=paris&amenities=wifi,pool&maxPrice=150&sort=rating
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListHotelsRequest{}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	// Повторяемый query-параметр: ?amenities=wifi&amenities=pool
	if amenities := query["amenities"]; len(amenities) > 0 {
		req.Amenities = amenities
	}

	if maxPriceStr := query.Get("maxPrice"); maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			h.logger.Warn("GET /hotels - Invalid max price: %s", maxPriceStr)
			handlers.RespondBadRequest(w, msgInvalidPrice)
			return
		}
		req.MaxStartingPrice = &maxPrice
	}

	req.SortByRating = query.Get("sort") == "rating"

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.ParseUint(pageStr, 10, 64)
		if err != nil || page == 0 {
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		req.Page = page
	}
	if pageSizeStr := query.Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.ParseUint(pageSizeStr, 10, 64)
		if err != nil || pageSize == 0 {
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		req.PageSize = pageSize
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrInvalidInput):
			h.logger.Warn("GET /hotels - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /hotels - Failed to list hotels: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels - Retrieved %d of %d hotels", len(result.Hotels), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
