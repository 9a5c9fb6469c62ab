package sync_hotel

import (
	"time"

	syncHotel "github.com/staymarket/booking-service/internal/usecase/sync_hotel"
)

// RoomTypeRequest желаемое состояние room type
// id отсутствует для новых типов номеров
type RoomTypeRequest struct {
	ID             *int64   `json:"id,omitempty"`
	Title          string   `json:"title"`
	CapacityAdults int      `json:"capacityAdults"`
	Quantity       int      `json:"quantity"`
	PricePerNight  float64  `json:"pricePerNight"`
	Amenities      []string `json:"amenities,omitempty"`
}

// SyncHotelRequest HTTP request model
// Поля отеля опциональны, список roomTypes описывает полный целевой набор
type SyncHotelRequest struct {
	Name        *string           `json:"name,omitempty"`
	City        *string           `json:"city,omitempty"`
	Country     *string           `json:"country,omitempty"`
	Images      *[]string         `json:"images,omitempty"`
	Description *string           `json:"description,omitempty"`
	Amenities   *[]string         `json:"amenities,omitempty"`
	Rating      *float64          `json:"rating,omitempty"`
	Currency    *string           `json:"currency,omitempty"`
	RoomTypes   []RoomTypeRequest `json:"roomTypes"`
}

// RoomTypeResponse HTTP response model
type RoomTypeResponse struct {
	ID             int64    `json:"id"`
	HotelID        int64    `json:"hotelId"`
	Title          string   `json:"title"`
	CapacityAdults int      `json:"capacityAdults"`
	Quantity       int      `json:"quantity"`
	PricePerNight  float64  `json:"pricePerNight"`
	Amenities      []string `json:"amenities"`
}

// HotelResponse HTTP response model
type HotelResponse struct {
	ID                    int64              `json:"id"`
	OwnerID               int64              `json:"ownerId"`
	Name                  string             `json:"name"`
	City                  string             `json:"city"`
	Country               string             `json:"country"`
	Images                []string           `json:"images"`
	Description           *string            `json:"description,omitempty"`
	Amenities             []string           `json:"amenities"`
	Rating                *float64           `json:"rating,omitempty"`
	Currency              string             `json:"currency"`
	StartingPricePerNight float64            `json:"startingPricePerNight"`
	RoomTypes             []RoomTypeResponse `json:"roomTypes"`
	CreatedAt             string             `json:"createdAt"`
	UpdatedAt             string             `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SyncHotelRequest) ToUseCaseRequest(ownerID, hotelID int64) *syncHotel.Request {
	roomTypes := make([]syncHotel.RoomTypeInput, 0, len(r.RoomTypes))
	for _, rt := range r.RoomTypes {
		roomTypes = append(roomTypes, syncHotel.RoomTypeInput{
			ID:             rt.ID,
			Title:          rt.Title,
			CapacityAdults: rt.CapacityAdults,
			Quantity:       rt.Quantity,
			PricePerNight:  rt.PricePerNight,
			Amenities:      rt.Amenities,
		})
	}

	return &syncHotel.Request{
		OwnerID: ownerID,
		HotelID: hotelID,
		Patch: syncHotel.HotelPatchInput{
			Name:        r.Name,
			City:        r.City,
			Country:     r.Country,
			Images:      r.Images,
			Description: r.Description,
			Amenities:   r.Amenities,
			Rating:      r.Rating,
			Currency:    r.Currency,
		},
		RoomTypes: roomTypes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncHotel.Response) *HotelResponse {
	h := resp.Hotel

	images := h.Images
	if images == nil {
		images = []string{}
	}
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	response := &HotelResponse{
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
		RoomTypes:             make([]RoomTypeResponse, 0, len(resp.RoomTypes)),
		CreatedAt:             h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             h.UpdatedAt.Format(time.RFC3339),
	}

	for _, rt := range resp.RoomTypes {
		rtAmenities := rt.Amenities
		if rtAmenities == nil {
			rtAmenities = []string{}
		}
		response.RoomTypes = append(response.RoomTypes, RoomTypeResponse{
			ID:             rt.ID,
			HotelID:        rt.HotelID,
			Title:          rt.Title,
			CapacityAdults: rt.CapacityAdults,
			Quantity:       rt.Quantity,
			PricePerNight:  rt.PricePerNight,
			Amenities:      rtAmenities,
		})
	}

	return response
}
