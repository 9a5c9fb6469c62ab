package sync_hotel

import "github.com/staymarket/booking-service/internal/domain"

// HotelPatchInput частичное обновление полей отеля
// ownerId и startingPricePerNight принять нельзя:
// первое неизменяемо, второе пересчитывается из room types
type HotelPatchInput struct {
	Name        *string
	City        *string
	Country     *string
	Images      *[]string
	Description *string
	Amenities   *[]string
	Rating      *float64
	Currency    *string
}

// RoomTypeInput желаемое состояние одного room type
// ID == nil означает создание нового, иначе обновление существующего
type RoomTypeInput struct {
	ID             *int64
	Title          string
	CapacityAdults int
	Quantity       int
	PricePerNight  float64
	Amenities      []string
}

// Request модель запроса на синхронизацию отеля
// Список RoomTypes описывает полный целевой набор:
// существующие room types, отсутствующие в списке, будут удалены
type Request struct {
	OwnerID   int64
	HotelID   int64
	Patch     HotelPatchInput
	RoomTypes []RoomTypeInput
}

// Response модель ответа с состоянием отеля после синхронизации
type Response struct {
	Hotel     *domain.Hotel
	RoomTypes []*domain.RoomType
}
