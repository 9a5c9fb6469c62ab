package create_hotel

import (
	"fmt"
	"strings"

	"github.com/staymarket/booking-service/internal/domain"
)

// validateRequest валидирует запрос на создание отеля
// Любая ошибка валидации откатывает создание целиком — проверяем всё до транзакции
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidID)
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.Country) == "" {
		return ErrMissingRequiredField
	}

	if req.Rating != nil && (*req.Rating < domain.MinRating || *req.Rating > domain.MaxRating) {
		return ErrInvalidRating
	}

	if len(req.RoomTypes) == 0 {
		return ErrNoRoomTypesProvided
	}

	for i, rt := range req.RoomTypes {
		if err := validateRoomType(i, rt); err != nil {
			return err
		}
	}

	return nil
}

// validateRoomType валидирует данные одного room type
func validateRoomType(i int, rt RoomTypeInput) error {
	if strings.TrimSpace(rt.Title) == "" {
		return fmt.Errorf("%w: roomTypes[%d]: title is required", ErrInvalidRoomType, i)
	}
	if rt.CapacityAdults < domain.MinCapacityAdults {
		return fmt.Errorf("%w: roomTypes[%d]: capacityAdults must be >= %d", ErrInvalidRoomType, i, domain.MinCapacityAdults)
	}
	if rt.Quantity < domain.MinRoomQuantity {
		return fmt.Errorf("%w: roomTypes[%d]: quantity must be >= %d", ErrInvalidRoomType, i, domain.MinRoomQuantity)
	}
	if rt.PricePerNight < 0 {
		return fmt.Errorf("%w: roomTypes[%d]: pricePerNight must be >= 0", ErrInvalidRoomType, i)
	}
	return nil
}

// minPrice возвращает минимальную цену за ночь по списку входных room types
func minPrice(roomTypes []RoomTypeInput) float64 {
	min := roomTypes[0].PricePerNight
	for _, rt := range roomTypes[1:] {
		if rt.PricePerNight < min {
			min = rt.PricePerNight
		}
	}
	return min
}
