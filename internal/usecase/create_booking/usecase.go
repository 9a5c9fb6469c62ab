package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/staymarket/booking-service/internal/domain"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	roomTypeRepo "github.com/staymarket/booking-service/internal/infra/storage/roomtype"
)

// UseCase use case создания заявки на бронирование
// Создает заявку в статусе pending со снапшотом цены на момент подачи.
// Инвентарь при этом не списывается — подтверждение остается за владельцем
type UseCase struct {
	hotelRepo    HotelRepository
	roomTypeRepo RoomTypeRepository
	bookingRepo  BookingRepository
	events       EventPublisher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hotelRepo HotelRepository,
	roomTypeRepo RoomTypeRepository,
	bookingRepo BookingRepository,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
		bookingRepo:  bookingRepo,
		events:       events,
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки на бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, hotel=%d, roomType=%d, checkIn=%s, checkOut=%s, adults=%d, rooms=%d",
		req.GuestID, req.HotelID, req.RoomTypeID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.GuestsAdults, req.RoomsRequested)

	// 1. Валидация идентификаторов и контактных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем отель
	hotel, err := uc.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateBooking: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 3. Получаем room type со скоупингом по отелю —
	// room type чужого отеля неотличим от несуществующего
	roomType, err := uc.roomTypeRepo.GetByIDAndHotel(ctx, req.RoomTypeID, req.HotelID)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			uc.logger.Warn("CreateBooking: room type id=%d not found in hotel id=%d", req.RoomTypeID, req.HotelID)
			return nil, ErrRoomTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room type id=%d: %v", req.RoomTypeID, err)
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	// 4. Оцениваем заявку: ночи, вместимость, инвентарь, снапшот цены
	quote, err := evaluateStay(hotel, roomType, req.CheckIn, req.CheckOut, req.GuestsAdults, req.RoomsRequested)
	if err != nil {
		uc.logger.Warn("CreateBooking: stay evaluation failed: %v", err)
		return nil, err
	}

	// 5. Создаем заявку в статусе pending со встроенным снапшотом цены
	booking := &domain.Booking{
		HotelID:        req.HotelID,
		RoomTypeID:     req.RoomTypeID,
		GuestID:        req.GuestID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		GuestsAdults:   req.GuestsAdults,
		RoomsRequested: req.RoomsRequested,
		Currency:       quote.Currency,
		PricePerNight:  quote.PricePerNight,
		TotalAmount:    quote.TotalAmount,
		GuestInfo:      normalizeGuestInfo(req.GuestInfo),
		Status:         domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f %s",
		created.ID, created.TotalAmount, created.Currency)

	// 6. Публикуем событие (best-effort, заявка уже сохранена)
	if uc.events != nil {
		if err := uc.events.BookingCreated(ctx, created); err != nil {
			uc.logger.Error("CreateBooking: failed to publish booking.created for id=%d: %v", created.ID, err)
		}
	}

	return &Response{
		Booking: created,
		Nights:  quote.Nights,
	}, nil
}
