package sync_hotel

import (
	"fmt"
	"strings"

	"github.com/staymarket/booking-service/internal/domain"
)

// validateRequest валидирует запрос на синхронизацию целиком до транзакции
// Целевое состояние либо применимо полностью, либо отвергается
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 || req.HotelID <= 0 {
		return fmt.Errorf("%w: ownerID and hotelID must be positive", ErrInvalidID)
	}

	if err := validatePatch(&req.Patch); err != nil {
		return err
	}

	if len(req.RoomTypes) == 0 {
		return ErrNoRoomTypesRemaining
	}

	for i, rt := range req.RoomTypes {
		if err := validateRoomType(i, rt); err != nil {
			return err
		}
	}

	return nil
}

// validatePatch проверяет, что patch не очищает обязательные поля
func validatePatch(patch *HotelPatchInput) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return ErrMissingRequiredField
	}
	if patch.City != nil && strings.TrimSpace(*patch.City) == "" {
		return ErrMissingRequiredField
	}
	if patch.Country != nil && strings.TrimSpace(*patch.Country) == "" {
		return ErrMissingRequiredField
	}
	if patch.Currency != nil && strings.TrimSpace(*patch.Currency) == "" {
		return ErrMissingRequiredField
	}
	if patch.Rating != nil && (*patch.Rating < domain.MinRating || *patch.Rating > domain.MaxRating) {
		return ErrInvalidRating
	}
	return nil
}

// validateRoomType валидирует данные одного room type из целевого набора
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

// buildDomainPatch конвертирует входной patch в доменный
func buildDomainPatch(in *HotelPatchInput) domain.HotelPatch {
	return domain.HotelPatch{
		Name:        in.Name,
		City:        in.City,
		Country:     in.Country,
		Images:      in.Images,
		Description: in.Description,
		Amenities:   in.Amenities,
		Rating:      in.Rating,
		Currency:    in.Currency,
	}
}
