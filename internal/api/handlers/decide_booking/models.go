package decide_booking

import (
	"time"

	"github.com/staymarket/booking-service/internal/domain"
	decideBooking "github.com/staymarket/booking-service/internal/usecase/decide_booking"
)

// DecideBookingRequest HTTP request model
type DecideBookingRequest struct {
	Decision string `json:"decision"` // "approved" | "rejected"
	Reason   string `json:"reason,omitempty"`
}

// OwnerDecisionResponse отметка о решении владельца
type OwnerDecisionResponse struct {
	DecidedAt string `json:"decidedAt"`
	DecidedBy int64  `json:"decidedBy"`
	Reason    string `json:"reason,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64                  `json:"id"`
	HotelID       int64                  `json:"hotelId"`
	RoomTypeID    int64                  `json:"roomTypeId"`
	GuestID       int64                  `json:"guestId"`
	CheckIn       string                 `json:"checkIn"`
	CheckOut      string                 `json:"checkOut"`
	Currency      string                 `json:"currency"`
	TotalAmount   float64                `json:"totalAmount"`
	Status        string                 `json:"status"`
	OwnerDecision *OwnerDecisionResponse `json:"ownerDecision,omitempty"`
	UpdatedAt     string                 `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *decideBooking.Response) *BookingResponse {
	b := resp.Booking
	response := &BookingResponse{
		ID:          b.ID,
		HotelID:     b.HotelID,
		RoomTypeID:  b.RoomTypeID,
		GuestID:     b.GuestID,
		CheckIn:     b.CheckIn.Format(domain.DateFormat),
		CheckOut:    b.CheckOut.Format(domain.DateFormat),
		Currency:    b.Currency,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}

	if b.OwnerDecision != nil {
		response.OwnerDecision = &OwnerDecisionResponse{
			DecidedAt: b.OwnerDecision.DecidedAt.Format(time.RFC3339),
			DecidedBy: b.OwnerDecision.DecidedBy,
			Reason:    b.OwnerDecision.Reason,
		}
	}

	return response
}
