package decide_booking

import (
	"context"

	"github.com/staymarket/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Decide(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error)
}

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// EventPublisher интерфейс публикации событий бронирования
// nil publisher означает, что отправка событий отключена
type EventPublisher interface {
	BookingDecided(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
