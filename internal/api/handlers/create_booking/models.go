package create_booking

import (
	"time"

	"github.com/staymarket/booking-service/internal/domain"
	createBooking "github.com/staymarket/booking-service/internal/usecase/create_booking"
)

// GuestInfoRequest контактные данные гостя из формы подтверждения
type GuestInfoRequest struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	ArrivalTime string `json:"arrivalTime,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HotelID        int64            `json:"hotelId"`
	RoomTypeID     int64            `json:"roomTypeId"`
	CheckIn        string           `json:"checkIn"`  // "2026-10-15"
	CheckOut       string           `json:"checkOut"` // "2026-10-18"
	GuestsAdults   int              `json:"guestsAdults"`
	RoomsRequested int              `json:"roomsRequested"`
	GuestInfo      GuestInfoRequest `json:"guestInfo"`
}

// GuestInfoResponse контактные данные гостя в ответе
type GuestInfoResponse struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	ArrivalTime string `json:"arrivalTime,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64             `json:"id"`
	HotelID        int64             `json:"hotelId"`
	RoomTypeID     int64             `json:"roomTypeId"`
	GuestID        int64             `json:"guestId"`
	CheckIn        string            `json:"checkIn"`
	CheckOut       string            `json:"checkOut"`
	Nights         int               `json:"nights"`
	GuestsAdults   int               `json:"guestsAdults"`
	RoomsRequested int               `json:"roomsRequested"`
	Currency       string            `json:"currency"`
	PricePerNight  float64           `json:"pricePerNight"`
	TotalAmount    float64           `json:"totalAmount"`
	GuestInfo      GuestInfoResponse `json:"guestInfo"`
	Status         string            `json:"status"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(guestID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GuestID:        guestID,
		HotelID:        r.HotelID,
		RoomTypeID:     r.RoomTypeID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		GuestsAdults:   r.GuestsAdults,
		RoomsRequested: r.RoomsRequested,
		GuestInfo: createBooking.GuestInfoInput{
			FullName:    r.GuestInfo.FullName,
			Phone:       r.GuestInfo.Phone,
			Email:       r.GuestInfo.Email,
			ArrivalTime: r.GuestInfo.ArrivalTime,
			Notes:       r.GuestInfo.Notes,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:             b.ID,
		HotelID:        b.HotelID,
		RoomTypeID:     b.RoomTypeID,
		GuestID:        b.GuestID,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		Nights:         resp.Nights,
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
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
