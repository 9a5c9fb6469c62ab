package domain

import "time"

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Decision решение владельца по заявке
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// GuestInfo контактные данные гостя, собираются при подтверждении заявки
type GuestInfo struct {
	FullName    string // обязательное
	Phone       string // обязательное
	Email       string
	ArrivalTime string
	Notes       string
}

// OwnerDecision отметка о решении владельца
// Заполняется ровно один раз при approve/reject
type OwnerDecision struct {
	DecidedAt time.Time
	DecidedBy int64
	Reason    string
}

// Booking represents a booking request for a room type
type Booking struct {
	ID         int64
	HotelID    int64
	RoomTypeID int64
	GuestID    int64

	CheckIn  time.Time
	CheckOut time.Time

	GuestsAdults   int
	RoomsRequested int

	// Снапшот цены на момент создания заявки.
	// Не меняется при последующих изменениях room type
	Currency      string
	PricePerNight float64
	TotalAmount   float64

	GuestInfo GuestInfo

	Status        BookingStatus
	OwnerDecision *OwnerDecision

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the booking is still awaiting the owner's decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsDecided returns true if the owner has approved or rejected the booking
func (b *Booking) IsDecided() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// BookingsFilter фильтр списков бронирований
type BookingsFilter struct {
	GuestID  *int64
	HotelIDs []int64 // бронирования по отелям владельца
	Status   *BookingStatus
	Limit    uint64
	Offset   uint64
}
