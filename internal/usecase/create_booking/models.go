package create_booking

import (
	"time"

	"github.com/staymarket/booking-service/internal/domain"
)

// GuestInfoInput контактные данные гостя из формы подтверждения
type GuestInfoInput struct {
	FullName    string
	Phone       string
	Email       string
	ArrivalTime string
	Notes       string
}

// Request модель запроса на создание заявки на бронирование
type Request struct {
	GuestID        int64
	HotelID        int64
	RoomTypeID     int64
	CheckIn        time.Time
	CheckOut       time.Time
	GuestsAdults   int
	RoomsRequested int
	GuestInfo      GuestInfoInput
}

// Response модель ответа с созданной заявкой
type Response struct {
	Booking *domain.Booking
	Nights  int
}
