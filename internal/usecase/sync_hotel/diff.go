package sync_hotel

import (
	"fmt"
	"strings"

	"github.com/staymarket/booking-service/internal/domain"
)

// rosterDiff результат сравнения существующих room types с целевым набором
type rosterDiff struct {
	toUpdate    []*domain.RoomType
	toCreate    []*domain.RoomType
	toDeleteIDs []int64
	target      []*domain.RoomType // полный набор после применения diff
}

// buildRosterDiff раскладывает целевой набор room types на три явных списка:
// обновления (id указан и найден), создания (id не указан) и удаления
// (существующий room type не упомянут в целевом наборе).
// Ссылка на чужой или несуществующий id — ошибка, а не создание
func buildRosterDiff(hotelID int64, existing []*domain.RoomType, incoming []RoomTypeInput) (*rosterDiff, error) {
	existingByID := make(map[int64]*domain.RoomType, len(existing))
	for _, rt := range existing {
		existingByID[rt.ID] = rt
	}

	diff := &rosterDiff{}
	seen := make(map[int64]bool, len(incoming))

	for i, in := range incoming {
		if in.ID == nil {
			created := &domain.RoomType{
				HotelID:        hotelID,
				Title:          strings.TrimSpace(in.Title),
				CapacityAdults: in.CapacityAdults,
				Quantity:       in.Quantity,
				PricePerNight:  in.PricePerNight,
				Amenities:      in.Amenities,
			}
			diff.toCreate = append(diff.toCreate, created)
			diff.target = append(diff.target, created)
			continue
		}

		current, ok := existingByID[*in.ID]
		if !ok || *in.ID <= 0 {
			return nil, fmt.Errorf("%w: roomTypes[%d]: id=%d", ErrInvalidRoomTypeID, i, *in.ID)
		}
		if seen[*in.ID] {
			return nil, fmt.Errorf("%w: roomTypes[%d]: id=%d referenced twice", ErrInvalidRoomTypeID, i, *in.ID)
		}
		seen[*in.ID] = true

		updated := &domain.RoomType{
			ID:             current.ID,
			HotelID:        hotelID,
			Title:          strings.TrimSpace(in.Title),
			CapacityAdults: in.CapacityAdults,
			Quantity:       in.Quantity,
			PricePerNight:  in.PricePerNight,
			Amenities:      in.Amenities,
			CreatedAt:      current.CreatedAt,
		}
		diff.toUpdate = append(diff.toUpdate, updated)
		diff.target = append(diff.target, updated)
	}

	for _, rt := range existing {
		if !seen[rt.ID] {
			diff.toDeleteIDs = append(diff.toDeleteIDs, rt.ID)
		}
	}

	return diff, nil
}
