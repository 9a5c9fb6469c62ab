package sync_hotel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/staymarket/booking-service/internal/api/handlers"
	"github.com/staymarket/booking-service/internal/api/middleware"
	syncHotel "github.com/staymarket/booking-service/internal/usecase/sync_hotel"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHotelID     = "некорректный ID отеля"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHotelNotFound      = "отель не найден"
	msgForbidden          = "доступ запрещен"
	msgMissingFields      = "название, город и страна не могут быть пустыми"
	msgInvalidRating      = "рейтинг должен быть в диапазоне от 0 до 5"
	msgInvalidRoomType    = "некорректные данные типа номеров"
	msgInvalidRoomTypeID  = "тип номеров не принадлежит этому отелю"
	msgNoRoomTypes        = "у отеля должен остаться хотя бы один тип номеров"
	msgDuplicate          = "тип номеров с таким названием уже существует"
)

type Handler struct {
	useCase SyncHotelUseCase
	logger  Logger
}

func NewHandler(useCase SyncHotelUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /hotels/{id} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /hotels/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SyncHotelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hotels/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerID, hotelID))
	if err != nil {
		switch {
		case errors.Is(err, syncHotel.ErrInvalidID):
			h.logger.Warn("PUT /hotels/{id} - Invalid identifier: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidHotelID)

		case errors.Is(err, syncHotel.ErrHotelNotFound):
			h.logger.Warn("PUT /hotels/{id} - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, syncHotel.ErrAccessDenied):
			h.logger.Warn("PUT /hotels/{id} - Access denied: hotel_id=%d, user_id=%d", hotelID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, syncHotel.ErrMissingRequiredField):
			h.logger.Warn("PUT /hotels/{id} - Missing required fields: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, syncHotel.ErrInvalidRating):
			h.logger.Warn("PUT /hotels/{id} - Invalid rating: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, syncHotel.ErrInvalidRoomType):
			h.logger.Warn("PUT /hotels/{id} - Invalid room type: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.Is(err, syncHotel.ErrInvalidRoomTypeID):
			h.logger.Warn("PUT /hotels/{id} - Foreign room type ID: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidRoomTypeID)

		case errors.Is(err, syncHotel.ErrNoRoomTypesRemaining):
			h.logger.Warn("PUT /hotels/{id} - No room types remaining: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgNoRoomTypes)

		case errors.Is(err, syncHotel.ErrDuplicate):
			h.logger.Warn("PUT /hotels/{id} - Duplicate room type title: hotel_id=%d", hotelID)
			handlers.RespondConflict(w, msgDuplicate)

		default:
			h.logger.Error("PUT /hotels/{id} - Failed to sync hotel: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /hotels/{id} - Hotel synced successfully: hotel_id=%d, owner_id=%d, room_types=%d",
		hotelID, ownerID, len(result.RoomTypes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
