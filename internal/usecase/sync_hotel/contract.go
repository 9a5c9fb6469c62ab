package sync_hotel

import (
	"context"

	"github.com/staymarket/booking-service/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Update(ctx context.Context, id int64, patch domain.HotelPatch) error
	UpdateStartingPrice(ctx context.Context, id int64, price float64) error
}

// RoomTypeRepository интерфейс репозитория room types
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *domain.RoomType) (*domain.RoomType, error)
	ListByHotelID(ctx context.Context, hotelID int64) ([]*domain.RoomType, error)
	Update(ctx context.Context, roomType *domain.RoomType) error
	DeleteByIDs(ctx context.Context, hotelID int64, ids []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
