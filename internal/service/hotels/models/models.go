package models

import (
	"time"

	"github.com/staymarket/booking-service/internal/domain"
)

// Request модели

// ListHotelsRequest запрос публичного каталога отелей
type ListHotelsRequest struct {
	Search           *string  `json:"search,omitempty"`           // Поиск по названию/городу/стране
	Amenities        []string `json:"amenities,omitempty"`        // Отель должен содержать все перечисленные удобства
	MaxStartingPrice *float64 `json:"maxStartingPrice,omitempty"` // Верхняя граница стартовой цены
	SortByRating     bool     `json:"sortByRating,omitempty"`
	Page             uint64   `json:"page"`
	PageSize         uint64   `json:"pageSize"`
}

// Response модели

// HotelResponse ответ с данными отеля
type HotelResponse struct {
	ID                    int64     `json:"id"`
	OwnerID               int64     `json:"ownerId"`
	Name                  string    `json:"name"`
	City                  string    `json:"city"`
	Country               string    `json:"country"`
	Images                []string  `json:"images"`
	Description           *string   `json:"description,omitempty"`
	Amenities             []string  `json:"amenities"`
	Rating                *float64  `json:"rating,omitempty"`
	Currency              string    `json:"currency"`
	StartingPricePerNight float64   `json:"startingPricePerNight"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// RoomTypeResponse ответ с данными room type
type RoomTypeResponse struct {
	ID             int64    `json:"id"`
	HotelID        int64    `json:"hotelId"`
	Title          string   `json:"title"`
	CapacityAdults int      `json:"capacityAdults"`
	Quantity       int      `json:"quantity"`
	PricePerNight  float64  `json:"pricePerNight"`
	Amenities      []string `json:"amenities"`
}

// HotelDetailsResponse карточка отеля вместе с room types
type HotelDetailsResponse struct {
	Hotel     HotelResponse      `json:"hotel"`
	RoomTypes []RoomTypeResponse `json:"roomTypes"`
}

// HotelListResponse ответ каталога с пагинацией
type HotelListResponse struct {
	Hotels   []HotelResponse `json:"hotels"`
	Total    int64           `json:"total"`
	Page     uint64          `json:"page"`
	PageSize uint64          `json:"pageSize"`
}

// OwnerHotelResponse отель владельца со счетчиками для дашборда
type OwnerHotelResponse struct {
	HotelResponse

	TotalBookingsCount  int64 `json:"totalBookingsCount"`
	ActiveRequestsCount int64 `json:"activeRequestsCount"`
	TotalRoomsCount     int64 `json:"totalRoomsCount"`
}

// OwnerHotelListResponse ответ дашборда владельца
type OwnerHotelListResponse struct {
	Hotels []OwnerHotelResponse `json:"hotels"`
}

// Методы конвертации

// FromDomainHotel конвертирует domain модель в DTO
func FromDomainHotel(h *domain.Hotel) *HotelResponse {
	if h == nil {
		return nil
	}

	images := h.Images
	if images == nil {
		images = []string{}
	}
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &HotelResponse{
		ID:                    h.ID,
		OwnerID:               h.OwnerID,
		Name:                  h.Name,
		City:                  h.City,
		Country:               h.Country,
		Images:                images,
		Description:           h.Description,
		Amenities:             amenities,
		Rating:                h.Rating,
		Currency:              h.Currency,
		StartingPricePerNight: h.StartingPricePerNight,
		CreatedAt:             h.CreatedAt,
		UpdatedAt:             h.UpdatedAt,
	}
}

// FromDomainRoomType конвертирует domain модель в DTO
func FromDomainRoomType(rt *domain.RoomType) *RoomTypeResponse {
	if rt == nil {
		return nil
	}

	amenities := rt.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &RoomTypeResponse{
		ID:             rt.ID,
		HotelID:        rt.HotelID,
		Title:          rt.Title,
		CapacityAdults: rt.CapacityAdults,
		Quantity:       rt.Quantity,
		PricePerNight:  rt.PricePerNight,
		Amenities:      amenities,
	}
}

// FromDomainRoomTypeList конвертирует список domain моделей в DTO
func FromDomainRoomTypeList(roomTypes []*domain.RoomType) []RoomTypeResponse {
	resp := make([]RoomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		if rtResp := FromDomainRoomType(rt); rtResp != nil {
			resp = append(resp, *rtResp)
		}
	}
	return resp
}

// FromDomainHotelList конвертирует список domain моделей в DTO
func FromDomainHotelList(hotels []*domain.Hotel, total int64, page, pageSize uint64) *HotelListResponse {
	resp := &HotelListResponse{
		Hotels:   make([]HotelResponse, 0, len(hotels)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	for _, hotel := range hotels {
		if hotelResp := FromDomainHotel(hotel); hotelResp != nil {
			resp.Hotels = append(resp.Hotels, *hotelResp)
		}
	}

	return resp
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListHotelsRequest) ToDomainFilter() domain.HotelsFilter {
	page, pageSize := NormalizePage(r.Page, r.PageSize)
	return domain.HotelsFilter{
		Search:           r.Search,
		Amenities:        r.Amenities,
		MaxStartingPrice: r.MaxStartingPrice,
		SortByRating:     r.SortByRating,
		Limit:            pageSize,
		Offset:           (page - 1) * pageSize,
	}
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
