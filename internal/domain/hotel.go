package domain

import "time"

// Hotel represents a hotel listed on the marketplace
type Hotel struct {
	ID          int64
	OwnerID     int64 // владелец, неизменяем после создания
	Name        string
	City        string
	Country     string
	Images      []string
	Description *string
	Amenities   []string
	Rating      *float64
	Currency    string

	// StartingPricePerNight производное поле: min(pricePerNight) по всем
	// room types отеля. Никогда не задается клиентом напрямую,
	// пересчитывается в конце транзакций создания и синхронизации
	StartingPricePerNight float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the hotel belongs to the given user
func (h *Hotel) IsOwnedBy(userID int64) bool {
	return h.OwnerID == userID
}

// HotelPatch частичное обновление полей отеля
// ownerId и startingPricePerNight намеренно отсутствуют:
// первое неизменяемо, второе пересчитывается только внутри транзакций
type HotelPatch struct {
	Name        *string
	City        *string
	Country     *string
	Images      *[]string
	Description *string
	Amenities   *[]string
	Rating      *float64
	Currency    *string
}

// IsEmpty returns true if the patch does not change anything
func (p *HotelPatch) IsEmpty() bool {
	return p.Name == nil && p.City == nil && p.Country == nil &&
		p.Images == nil && p.Description == nil && p.Amenities == nil &&
		p.Rating == nil && p.Currency == nil
}

// HotelsFilter фильтр публичного каталога отелей
type HotelsFilter struct {
	Search           *string  // поиск по name/city/country (без учета регистра)
	Amenities        []string // отель должен содержать все перечисленные удобства
	MaxStartingPrice *float64 // верхняя граница startingPricePerNight
	SortByRating     bool     // сортировка по рейтингу, иначе по дате создания
	Limit            uint64
	Offset           uint64
}

// HotelOwnerStats счетчики для дашборда владельца
type HotelOwnerStats struct {
	TotalBookingsCount  int64
	ActiveRequestsCount int64 // бронирования в статусе pending
	TotalRoomsCount     int64 // сумма quantity по всем room types
}
