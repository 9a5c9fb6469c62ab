package hotels

import (
	"context"

	"github.com/staymarket/booking-service/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Hotel, error)
	List(ctx context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, int64, error)
}

// RoomTypeRepository интерфейс репозитория room types
type RoomTypeRepository interface {
	ListByHotelID(ctx context.Context, hotelID int64) ([]*domain.RoomType, error)
	TotalRoomsByHotelIDs(ctx context.Context, hotelIDs []int64) (map[int64]int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	StatsByHotelIDs(ctx context.Context, hotelIDs []int64) (map[int64]domain.HotelOwnerStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
