package create_booking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/staymarket/booking-service/internal/domain"
)

// stayQuote результат оценки заявки: количество ночей и снапшот цены
// Цена и валюта берутся только из room type и отеля, клиентские значения
// не используются
type stayQuote struct {
	Nights        int
	PricePerNight float64
	TotalAmount   float64
	Currency      string
}

// validateRequest валидирует идентификаторы и контактные данные запроса
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidID)
	}
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidID)
	}
	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidID)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidDateRange)
	}

	if strings.TrimSpace(req.GuestInfo.FullName) == "" || strings.TrimSpace(req.GuestInfo.Phone) == "" {
		return ErrInvalidGuestInfo
	}

	return nil
}

// calcNights вычисляет количество ночей между датами заезда и выезда
// Время суток обнуляется, разница округляется до целых дней
func calcNights(checkIn, checkOut time.Time) int {
	s := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(e.Sub(s).Hours() / 24))
}

// evaluateStay проверяет заявку против инвентаря room type и считает снапшот цены
//
// Проверка доступности учитывает только заявленное количество номеров (quantity)
// и не вычитает номера, занятые пересекающимися по датам бронированиями.
// Известное упрощение: возможен овербукинг по пересекающимся диапазонам дат
func evaluateStay(hotel *domain.Hotel, roomType *domain.RoomType, checkIn, checkOut time.Time, guestsAdults, roomsRequested int) (*stayQuote, error) {
	nights := calcNights(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	if guestsAdults < 1 {
		return nil, fmt.Errorf("%w: guestsAdults must be >= 1", ErrInvalidGuestCount)
	}
	if roomsRequested < 1 {
		return nil, fmt.Errorf("%w: roomsRequested must be >= 1", ErrInvalidGuestCount)
	}

	// Минимальное количество номеров, вмещающее всех гостей
	requiredRoomsMin := (guestsAdults + roomType.CapacityAdults - 1) / roomType.CapacityAdults
	if roomsRequested < requiredRoomsMin {
		return nil, fmt.Errorf("%w: this room type fits %d adults, need at least %d room(s) for %d adults",
			ErrInsufficientRoomsForGuests, roomType.CapacityAdults, requiredRoomsMin, guestsAdults)
	}

	if roomsRequested > roomType.Quantity {
		return nil, fmt.Errorf("%w: only %d rooms available for this room type",
			ErrInsufficientInventory, roomType.Quantity)
	}

	currency := hotel.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	pricePerNight := roomType.PricePerNight

	return &stayQuote{
		Nights:        nights,
		PricePerNight: pricePerNight,
		TotalAmount:   pricePerNight * float64(nights) * float64(roomsRequested),
		Currency:      currency,
	}, nil
}

// normalizeGuestInfo обрезает пробелы, опциональные поля по умолчанию пустые
func normalizeGuestInfo(info GuestInfoInput) domain.GuestInfo {
	return domain.GuestInfo{
		FullName:    strings.TrimSpace(info.FullName),
		Phone:       strings.TrimSpace(info.Phone),
		Email:       strings.TrimSpace(info.Email),
		ArrivalTime: strings.TrimSpace(info.ArrivalTime),
		Notes:       strings.TrimSpace(info.Notes),
	}
}
