package domain

// Default values
const (
	DefaultCurrency = "USD"
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Business validation constants
const (
	MinCapacityAdults = 1
	MinRoomQuantity   = 1
	MinRating         = 0.0
	MaxRating         = 5.0
	MaxNotesLength    = 500
	MaxReasonLength   = 500
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllBookingStatuses допустимые статусы бронирования
// Используется при валидации фильтров
var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

// IsValidBookingStatus проверяет, что строка является допустимым статусом
func IsValidBookingStatus(s string) bool {
	for _, status := range AllBookingStatuses {
		if BookingStatus(s) == status {
			return true
		}
	}
	return false
}
