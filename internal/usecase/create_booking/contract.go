package create_booking

import (
	"context"

	"github.com/staymarket/booking-service/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// RoomTypeRepository интерфейс репозитория room types
type RoomTypeRepository interface {
	GetByIDAndHotel(ctx context.Context, id, hotelID int64) (*domain.RoomType, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// EventPublisher интерфейс публикации событий бронирования
// nil publisher означает, что отправка событий отключена
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
