package create_hotel

import (
	"context"

	"github.com/staymarket/booking-service/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
}

// RoomTypeRepository интерфейс репозитория room types
type RoomTypeRepository interface {
	CreateBatch(ctx context.Context, hotelID int64, roomTypes []*domain.RoomType) error
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
