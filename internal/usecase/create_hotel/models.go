package create_hotel

import "github.com/staymarket/booking-service/internal/domain"

// RoomTypeInput данные нового room type
type RoomTypeInput struct {
	Title          string
	CapacityAdults int
	Quantity       int
	PricePerNight  float64
	Amenities      []string
}

// Request модель запроса на создание отеля
// Клиентское значение startingPricePerNight не принимается:
// поле производное и вычисляется из списка room types
type Request struct {
	OwnerID     int64
	Name        string
	City        string
	Country     string
	Images      []string
	Description *string
	Amenities   []string
	Rating      *float64
	Currency    string
	RoomTypes   []RoomTypeInput
}

// Response модель ответа с созданным отелем и его room types
type Response struct {
	Hotel     *domain.Hotel
	RoomTypes []*domain.RoomType
}
