package models

import (
	"errors"
	"time"

	"github.com/staymarket/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetGuestBookingsRequest запрос на получение бронирований гостя
type GetGuestBookingsRequest struct {
	GuestID  int64   `json:"guestId"`
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Page     uint64  `json:"page"`
	PageSize uint64  `json:"pageSize"`
}

// GetOwnerBookingsRequest запрос на получение заявок по отелям владельца
type GetOwnerBookingsRequest struct {
	OwnerID  int64   `json:"ownerId"`
	HotelID  *int64  `json:"hotelId,omitempty"` // Фильтр по конкретному отелю (опционально)
	Status   *string `json:"status,omitempty"`  // Фильтр по статусу (опционально)
	Page     uint64  `json:"page"`
	PageSize uint64  `json:"pageSize"`
}

// Response модели

// GuestInfoResponse контактные данные гостя в ответе
type GuestInfoResponse struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	ArrivalTime string `json:"arrivalTime,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// OwnerDecisionResponse отметка о решении владельца в ответе
type OwnerDecisionResponse struct {
	DecidedAt string `json:"decidedAt"` // ISO 8601 format
	DecidedBy int64  `json:"decidedBy"`
	Reason    string `json:"reason,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64 `json:"id"`
	HotelID    int64 `json:"hotelId"`
	RoomTypeID int64 `json:"roomTypeId"`
	GuestID    int64 `json:"guestId"`

	CheckIn  string `json:"checkIn"`  // "2026-10-15"
	CheckOut string `json:"checkOut"` // "2026-10-18"

	GuestsAdults   int `json:"guestsAdults"`
	RoomsRequested int `json:"roomsRequested"`

	// Снапшот цены на момент создания заявки
	Currency      string  `json:"currency"`
	PricePerNight float64 `json:"pricePerNight"`
	TotalAmount   float64 `json:"totalAmount"`

	GuestInfo GuestInfoResponse `json:"guestInfo"`

	Status        string                 `json:"status"`
	OwnerDecision *OwnerDecisionResponse `json:"ownerDecision,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований и пагинацией
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     uint64            `json:"page"`
	PageSize uint64            `json:"pageSize"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             b.ID,
		HotelID:        b.HotelID,
		RoomTypeID:     b.RoomTypeID,
		GuestID:        b.GuestID,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		GuestsAdults:   b.GuestsAdults,
		RoomsRequested: b.RoomsRequested,
		Currency:       b.Currency,
		PricePerNight:  b.PricePerNight,
		TotalAmount:    b.TotalAmount,
		GuestInfo: GuestInfoResponse{
			FullName:    b.GuestInfo.FullName,
			Phone:       b.GuestInfo.Phone,
			Email:       b.GuestInfo.Email,
			ArrivalTime: b.GuestInfo.ArrivalTime,
			Notes:       b.GuestInfo.Notes,
		},
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.OwnerDecision != nil {
		resp.OwnerDecision = &OwnerDecisionResponse{
			DecidedAt: b.OwnerDecision.DecidedAt.Format(time.RFC3339),
			DecidedBy: b.OwnerDecision.DecidedBy,
			Reason:    b.OwnerDecision.Reason,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, total int64, page, pageSize uint64) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.IsValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}

// NormalizePage возвращает номер страницы и размер с учетом значений по умолчанию
func NormalizePage(page, pageSize uint64) (uint64, uint64) {
	if page == 0 {
		page = domain.DefaultPage
	}
	if pageSize == 0 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}
	return page, pageSize
}
