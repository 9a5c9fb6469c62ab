package sync_hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/staymarket/booking-service/internal/domain"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	roomTypeRepo "github.com/staymarket/booking-service/internal/infra/storage/roomtype"
)

// UseCase use case синхронизации отеля с целевым состоянием
// Patch отеля и полный набор room types применяются одной транзакцией,
// в конце которой пересчитывается startingPricePerNight
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

// Execute выполняет use case синхронизации отеля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SyncHotel: owner=%d, hotel=%d, targetRoomTypes=%d", req.OwnerID, req.HotelID, len(req.RoomTypes))

	// 1. Полная валидация целевого состояния до транзакции
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SyncHotel: validation failed for hotel=%d: %v", req.HotelID, err)
		return nil, err
	}

	var (
		hotel  *domain.Hotel
		target []*domain.RoomType
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Отель блокируется на все время транзакции (FOR UPDATE),
		// конкурирующие синхронизации выполняются последовательно
		current, err := uc.hotelRepo.GetByID(txCtx, req.HotelID)
		if err != nil {
			if errors.Is(err, hotelRepo.ErrHotelNotFound) {
				return ErrHotelNotFound
			}
			return fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
		}

		// 3. Проверка прав владельца
		if !current.IsOwnedBy(req.OwnerID) {
			return ErrAccessDenied
		}

		// 4. Diff существующего набора room types с целевым
		existing, err := uc.roomTypeRepo.ListByHotelID(txCtx, req.HotelID)
		if err != nil {
			return fmt.Errorf("%w: failed to list room types: %v", ErrInternal, err)
		}

		diff, err := buildRosterDiff(req.HotelID, existing, req.RoomTypes)
		if err != nil {
			return err
		}

		// 5. Patch полей отеля
		patch := buildDomainPatch(&req.Patch)
		if !patch.IsEmpty() {
			if err := uc.hotelRepo.Update(txCtx, req.HotelID, patch); err != nil {
				if errors.Is(err, hotelRepo.ErrDuplicateKey) {
					return ErrDuplicate
				}
				return fmt.Errorf("%w: failed to update hotel: %v", ErrInternal, err)
			}
		}

		// 6. Применение diff: сначала удаления, чтобы освободить
		// названия для переименований и новых room types
		if len(diff.toDeleteIDs) > 0 {
			if err := uc.roomTypeRepo.DeleteByIDs(txCtx, req.HotelID, diff.toDeleteIDs); err != nil {
				return fmt.Errorf("%w: failed to delete room types: %v", ErrInternal, err)
			}
		}

		for _, rt := range diff.toUpdate {
			if err := uc.roomTypeRepo.Update(txCtx, rt); err != nil {
				if errors.Is(err, roomTypeRepo.ErrDuplicateKey) {
					return ErrDuplicate
				}
				if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
					return fmt.Errorf("%w: id=%d", ErrInvalidRoomTypeID, rt.ID)
				}
				return fmt.Errorf("%w: failed to update room type %d: %v", ErrInternal, rt.ID, err)
			}
		}

		for _, rt := range diff.toCreate {
			if _, err := uc.roomTypeRepo.Create(txCtx, rt); err != nil {
				if errors.Is(err, roomTypeRepo.ErrDuplicateKey) {
					return ErrDuplicate
				}
				return fmt.Errorf("%w: failed to create room type %q: %v", ErrInternal, rt.Title, err)
			}
		}

		// 7. Пересчет производной стартовой цены по целевому набору
		newPrice, ok := domain.MinPricePerNight(diff.target)
		if !ok {
			return ErrNoRoomTypesRemaining
		}
		if err := uc.hotelRepo.UpdateStartingPrice(txCtx, req.HotelID, newPrice); err != nil {
			return fmt.Errorf("%w: failed to update starting price: %v", ErrInternal, err)
		}

		// 8. Перечитываем отель в рамках транзакции для актуального ответа
		hotel, err = uc.hotelRepo.GetByID(txCtx, req.HotelID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload hotel: %v", ErrInternal, err)
		}
		target = diff.target

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrHotelNotFound), errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrInvalidRoomTypeID), errors.Is(err, ErrDuplicate):
			uc.logger.Warn("SyncHotel: rejected for hotel=%d: %v", req.HotelID, err)
		default:
			uc.logger.Error("SyncHotel: transaction failed for hotel=%d: %v", req.HotelID, err)
		}
		return nil, err
	}

	uc.logger.Info("SyncHotel: hotel=%d synced, roomTypes=%d, startingPrice=%.2f",
		req.HotelID, len(target), hotel.StartingPricePerNight)

	return &Response{
		Hotel:     hotel,
		RoomTypes: target,
	}, nil
}
