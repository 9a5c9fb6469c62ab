package events

import (
	"time"

	"github.com/staymarket/booking-service/internal/domain"
)

// Routing keys событий бронирования
const (
	RoutingKeyBookingCreated = "booking.created"
	RoutingKeyBookingDecided = "booking.decided"
)

// BookingCreatedEvent событие о создании заявки на бронирование
type BookingCreatedEvent struct {
	BookingID      int64     `json:"bookingId"`
	HotelID        int64     `json:"hotelId"`
	RoomTypeID     int64     `json:"roomTypeId"`
	GuestID        int64     `json:"guestId"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	RoomsRequested int       `json:"roomsRequested"`
	Currency       string    `json:"currency"`
	TotalAmount    float64   `json:"totalAmount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BookingDecidedEvent событие о решении владельца по заявке
type BookingDecidedEvent struct {
	BookingID int64     `json:"bookingId"`
	HotelID   int64     `json:"hotelId"`
	GuestID   int64     `json:"guestId"`
	Status    string    `json:"status"`
	DecidedBy int64     `json:"decidedBy"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}

// newBookingCreatedEvent собирает событие из domain модели
func newBookingCreatedEvent(b *domain.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:      b.ID,
		HotelID:        b.HotelID,
		RoomTypeID:     b.RoomTypeID,
		GuestID:        b.GuestID,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		RoomsRequested: b.RoomsRequested,
		Currency:       b.Currency,
		TotalAmount:    b.TotalAmount,
		CreatedAt:      b.CreatedAt,
	}
}

// newBookingDecidedEvent собирает событие из domain модели
// Ожидает заявку с заполненным OwnerDecision
func newBookingDecidedEvent(b *domain.Booking) BookingDecidedEvent {
	event := BookingDecidedEvent{
		BookingID: b.ID,
		HotelID:   b.HotelID,
		GuestID:   b.GuestID,
		Status:    string(b.Status),
	}
	if b.OwnerDecision != nil {
		event.DecidedBy = b.OwnerDecision.DecidedBy
		event.Reason = b.OwnerDecision.Reason
		event.DecidedAt = b.OwnerDecision.DecidedAt
	}
	return event
}
