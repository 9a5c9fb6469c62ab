package decide_booking

import "github.com/staymarket/booking-service/internal/domain"

// Request модель запроса на решение по заявке
type Request struct {
	OwnerID   int64
	BookingID int64
	Decision  string // "approved" | "rejected"
	Reason    string // опциональное пояснение владельца
}

// Response модель ответа с обновленной заявкой
type Response struct {
	Booking *domain.Booking
}
