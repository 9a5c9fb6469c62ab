package domain

import "time"

// RoomType represents a category of rooms within a hotel
// (e.g. "Standard Double"): shared capacity, price and quantity
type RoomType struct {
	ID             int64
	HotelID        int64
	Title          string
	CapacityAdults int // вместимость взрослых, >= 1
	Quantity       int // общее число номеров этого типа, >= 1
	PricePerNight  float64
	Amenities      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MinPricePerNight возвращает минимальную цену за ночь по списку room types
// Вторым значением возвращает false, если список пуст
func MinPricePerNight(roomTypes []*RoomType) (float64, bool) {
	if len(roomTypes) == 0 {
		return 0, false
	}
	min := roomTypes[0].PricePerNight
	for _, rt := range roomTypes[1:] {
		if rt.PricePerNight < min {
			min = rt.PricePerNight
		}
	}
	return min, true
}
