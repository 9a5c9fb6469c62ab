package create_hotel

import (
	"errors"
	"net/http"

	"github.com/staymarket/booking-service/internal/api/handlers"
	"github.com/staymarket/booking-service/internal/api/middleware"
	createHotel "github.com/staymarket/booking-service/internal/usecase/create_hotel"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingFields      = "название, город и страна обязательны"
	msgNoRoomTypes        = "требуется хотя бы один тип номеров"
	msgInvalidRoomType    = "некорректные данные типа номеров"
	msgInvalidRating      = "рейтинг должен быть в диапазоне от 0 до 5"
	msgDuplicate          = "отель с таким названием уже существует"
)

type Handler struct {
	useCase CreateHotelUseCase
	logger  Logger
}

func NewHandler(useCase CreateHotelUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /hotels - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateHotelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerID))
	if err != nil {
		switch {
		case errors.Is(err, createHotel.ErrInvalidID), errors.Is(err, createHotel.ErrMissingRequiredField):
			h.logger.Warn("POST /hotels - Missing required fields: owner_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createHotel.ErrNoRoomTypesProvided):
			h.logger.Warn("POST /hotels - No room types provided: owner_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgNoRoomTypes)

		case errors.Is(err, createHotel.ErrInvalidRoomType):
			h.logger.Warn("POST /hotels - Invalid room type: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.Is(err, createHotel.ErrInvalidRating):
			h.logger.Warn("POST /hotels - Invalid rating: owner_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, createHotel.ErrDuplicate):
			h.logger.Warn("POST /hotels - Duplicate hotel: owner_id=%d, name=%q", ownerID, req.Name)
			handlers.RespondConflict(w, msgDuplicate)

		default:
			h.logger.Error("POST /hotels - Failed to create hotel: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels - Hotel created successfully: hotel_id=%d, owner_id=%d, room_types=%d",
		result.Hotel.ID, ownerID, len(result.RoomTypes))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
