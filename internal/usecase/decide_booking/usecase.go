package decide_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/staymarket/booking-service/internal/domain"
	bookingRepo "github.com/staymarket/booking-service/internal/infra/storage/booking"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
)

// UseCase use case решения владельца по заявке на бронирование
// Переход pending -> approved/rejected выполняется ровно один раз
type UseCase struct {
	bookingRepo BookingRepository
	hotelRepo   HotelRepository
	events      EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hotelRepo HotelRepository,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		events:      events,
		logger:      logger,
	}
}

// Execute выполняет use case решения по заявке
//
// Запись решения идет через guarded update (WHERE status = 'pending'):
// проверка статуса и запись атомарны. При гонке двух конкурентных решений
// выигрывает первый писатель, второй перечитывает запись и получает
// ErrInvalidBookingState — решение никогда не перезаписывается молча
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideBooking: owner=%d, booking=%d, decision=%s", req.OwnerID, req.BookingID, req.Decision)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		uc.logger.Warn("DecideBooking: invalid booking id=%d", req.BookingID)
		return nil, ErrInvalidID
	}

	status, err := decisionToStatus(req.Decision)
	if err != nil {
		uc.logger.Warn("DecideBooking: invalid decision=%q", req.Decision)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("DecideBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("DecideBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Получаем отель бронирования
	hotel, err := uc.hotelRepo.GetByID(ctx, booking.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Error("DecideBooking: hotel id=%d of booking id=%d not found", booking.HotelID, req.BookingID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("DecideBooking: failed to get hotel id=%d: %v", booking.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 4. Проверяем права владельца
	if !hotel.IsOwnedBy(req.OwnerID) {
		uc.logger.Warn("DecideBooking: user=%d is not the owner of hotel=%d", req.OwnerID, hotel.ID)
		return nil, ErrAccessDenied
	}

	// 5. Ранняя проверка статуса — для уже решенных заявок
	// не делаем лишний запрос на запись
	if !booking.IsPending() {
		uc.logger.Warn("DecideBooking: booking id=%d is %s, not pending", req.BookingID, booking.Status)
		return nil, ErrInvalidBookingState
	}

	// 6. Атомарный переход pending -> decision
	decided, err := uc.bookingRepo.Decide(ctx, req.BookingID, status, req.OwnerID, strings.TrimSpace(req.Reason))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotPending) {
			// Конкурентное решение успело первым — перечитываем,
			// чтобы различить исчезнувшую запись и проигранную гонку
			if _, rereadErr := uc.bookingRepo.GetByID(ctx, req.BookingID); rereadErr != nil {
				if errors.Is(rereadErr, bookingRepo.ErrBookingNotFound) {
					uc.logger.Warn("DecideBooking: booking id=%d disappeared during decision", req.BookingID)
					return nil, ErrBookingNotFound
				}
				uc.logger.Error("DecideBooking: failed to re-read booking id=%d: %v", req.BookingID, rereadErr)
				return nil, fmt.Errorf("%w: failed to re-read booking: %v", ErrInternal, rereadErr)
			}
			uc.logger.Warn("DecideBooking: booking id=%d lost the decision race", req.BookingID)
			return nil, ErrInvalidBookingState
		}
		uc.logger.Error("DecideBooking: failed to decide booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to decide booking: %v", ErrInternal, err)
	}

	uc.logger.Info("DecideBooking: booking id=%d %s by owner=%d", decided.ID, decided.Status, req.OwnerID)

	// 7. Публикуем событие (best-effort, решение уже зафиксировано)
	if uc.events != nil {
		if err := uc.events.BookingDecided(ctx, decided); err != nil {
			uc.logger.Error("DecideBooking: failed to publish booking.decided for id=%d: %v", decided.ID, err)
		}
	}

	return &Response{Booking: decided}, nil
}

// decisionToStatus конвертирует решение владельца в статус бронирования
func decisionToStatus(decision string) (domain.BookingStatus, error) {
	switch domain.Decision(decision) {
	case domain.DecisionApproved:
		return domain.StatusApproved, nil
	case domain.DecisionRejected:
		return domain.StatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}
