package create_hotel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/staymarket/booking-service/internal/domain"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	roomTypeRepo "github.com/staymarket/booking-service/internal/infra/storage/roomtype"
)

// UseCase use case создания отеля вместе с room types
// Отель и все его room types создаются одной транзакцией:
// инвариант "у отеля всегда >= 1 room type" устанавливается с момента создания
type UseCase struct {
	hotelRepo    HotelRepository
	roomTypeRepo RoomTypeRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hotelRepo HotelRepository,
	roomTypeRepo RoomTypeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания отеля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHotel: owner=%d, name=%q, roomTypes=%d", req.OwnerID, req.Name, len(req.RoomTypes))

	// 1. Полная валидация до транзакции
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHotel: validation failed: %v", err)
		return nil, err
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	// 2. Стартовая цена вычисляется из room types,
	// клиентское значение не используется
	startingPrice := minPrice(req.RoomTypes)

	hotel := &domain.Hotel{
		OwnerID:               req.OwnerID,
		Name:                  strings.TrimSpace(req.Name),
		City:                  strings.TrimSpace(req.City),
		Country:               strings.TrimSpace(req.Country),
		Images:                req.Images,
		Description:           req.Description,
		Amenities:             req.Amenities,
		Rating:                req.Rating,
		Currency:              currency,
		StartingPricePerNight: startingPrice,
	}

	roomTypes := make([]*domain.RoomType, 0, len(req.RoomTypes))
	for _, rt := range req.RoomTypes {
		roomTypes = append(roomTypes, &domain.RoomType{
			Title:          strings.TrimSpace(rt.Title),
			CapacityAdults: rt.CapacityAdults,
			Quantity:       rt.Quantity,
			PricePerNight:  rt.PricePerNight,
			Amenities:      rt.Amenities,
		})
	}

	// 3. Отель и room types создаются атомарно:
	// ошибка на любом room type откатывает и создание отеля
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.hotelRepo.Create(txCtx, hotel)
		if err != nil {
			if errors.Is(err, hotelRepo.ErrDuplicateKey) {
				return ErrDuplicate
			}
			return fmt.Errorf("%w: failed to create hotel: %v", ErrInternal, err)
		}

		if err := uc.roomTypeRepo.CreateBatch(txCtx, created.ID, roomTypes); err != nil {
			if errors.Is(err, roomTypeRepo.ErrDuplicateKey) {
				return ErrDuplicate
			}
			return fmt.Errorf("%w: failed to create room types: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			uc.logger.Warn("CreateHotel: duplicate for owner=%d, name=%q", req.OwnerID, req.Name)
		} else {
			uc.logger.Error("CreateHotel: transaction failed for owner=%d: %v", req.OwnerID, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateHotel: successfully created hotel id=%d with %d room types, startingPrice=%.2f",
		hotel.ID, len(roomTypes), hotel.StartingPricePerNight)

	return &Response{
		Hotel:     hotel,
		RoomTypes: roomTypes,
	}, nil
}
