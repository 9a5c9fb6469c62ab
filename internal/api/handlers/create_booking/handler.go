package create_booking

import (
	"errors"
	"net/http"

	"github.com/staymarket/booking-service/internal/api/handlers"
	"github.com/staymarket/booking-service/internal/api/middleware"
	createBooking "github.com/staymarket/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange      = "дата выезда должна быть позже даты заезда"
	msgInvalidGuestCount     = "некорректное количество гостей или номеров"
	msgNotEnoughRooms        = "запрошенных номеров недостаточно для размещения всех гостей"
	msgInsufficientInventory = "запрошено больше номеров, чем доступно этого типа"
	msgInvalidGuestInfo      = "имя и телефон гостя обязательны"
	msgHotelNotFound         = "отель не найден"
	msgRoomTypeNotFound      = "тип номера не найден в этом отеле"
	msgInvalidID             = "некорректный идентификатор"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(guestID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidID):
			h.logger.Warn("POST /bookings - Invalid identifier: guest_id=%d", guestID)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: guest_id=%d, check_in=%s, check_out=%s",
				guestID, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidGuestCount):
			h.logger.Warn("POST /bookings - Invalid guest count: guest_id=%d", guestID)
			handlers.RespondBadRequest(w, msgInvalidGuestCount)

		case errors.Is(err, createBooking.ErrInsufficientRoomsForGuests):
			h.logger.Warn("POST /bookings - Not enough rooms for guests: guest_id=%d, guests=%d, rooms=%d",
				guestID, req.GuestsAdults, req.RoomsRequested)
			handlers.RespondBadRequest(w, msgNotEnoughRooms)

		case errors.Is(err, createBooking.ErrInvalidGuestInfo):
			h.logger.Warn("POST /bookings - Invalid guest info: guest_id=%d", guestID)
			handlers.RespondBadRequest(w, msgInvalidGuestInfo)

		case errors.Is(err, createBooking.ErrInsufficientInventory):
			h.logger.Warn("POST /bookings - Insufficient inventory: guest_id=%d, room_type_id=%d, rooms=%d",
				guestID, req.RoomTypeID, req.RoomsRequested)
			handlers.RespondConflict(w, msgInsufficientInventory)

		case errors.Is(err, createBooking.ErrHotelNotFound):
			h.logger.Warn("POST /bookings - Hotel not found: hotel_id=%d", req.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createBooking.ErrRoomTypeNotFound):
			h.logger.Warn("POST /bookings - Room type not found: hotel_id=%d, room_type_id=%d",
				req.HotelID, req.RoomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%d, hotel_id=%d, error=%v",
				guestID, req.HotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, guest_id=%d, hotel_id=%d",
		result.Booking.ID, guestID, req.HotelID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
