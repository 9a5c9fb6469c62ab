package decide_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/staymarket/booking-service/internal/api/handlers"
	"github.com/staymarket/booking-service/internal/api/middleware"
	decideBooking "github.com/staymarket/booking-service/internal/usecase/decide_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDecision    = "решение должно быть approved или rejected"
	msgBookingNotFound    = "бронирование не найдено"
	msgHotelNotFound      = "отель не найден"
	msgForbidden          = "доступ запрещен"
	msgAlreadyDecided     = "решение по заявке уже принято"
)

type Handler struct {
	useCase DecideBookingUseCase
	logger  Logger
}

func NewHandler(useCase DecideBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/decision - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DecideBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &decideBooking.Request{
		OwnerID:   ownerID,
		BookingID: bookingID,
		Decision:  req.Decision,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, decideBooking.ErrInvalidID), errors.Is(err, decideBooking.ErrInvalidDecision):
			h.logger.Warn("PATCH /bookings/{id}/decision - Invalid request: booking_id=%d, decision=%s",
				bookingID, req.Decision)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		case errors.Is(err, decideBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/decision - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, decideBooking.ErrHotelNotFound):
			h.logger.Warn("PATCH /bookings/{id}/decision - Hotel not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, decideBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/decision - Access denied: booking_id=%d, user_id=%d",
				bookingID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, decideBooking.ErrInvalidBookingState):
			h.logger.Warn("PATCH /bookings/{id}/decision - Already decided: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		default:
			h.logger.Error("PATCH /bookings/{id}/decision - Failed to decide booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/decision - Decision applied: booking_id=%d, owner_id=%d, status=%s",
		bookingID, ownerID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
