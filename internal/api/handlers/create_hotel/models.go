package create_hotel

import (
	"time"

	createHotel "github.com/staymarket/booking-service/internal/usecase/create_hotel"
)

// RoomTypeRequest данные нового room type
type RoomTypeRequest struct {
	Title          string   `json:"title"`
	CapacityAdults int      `json:"capacityAdults"`
	Quantity       int      `json:"quantity"`
	PricePerNight  float64  `json:"pricePerNight"`
	Amenities      []string `json:"amenities,omitempty"`
}

// CreateHotelRequest HTTP request model
type CreateHotelRequest struct {
	Name        string            `json:"name"`
	City        string            `json:"city"`
	Country     string            `json:"country"`
	Images      []string          `json:"images,omitempty"`
	Description *string           `json:"description,omitempty"`
	Amenities   []string          `json:"amenities,omitempty"`
	Rating      *float64          `json:"rating,omitempty"`
	Currency    string            `json:"currency,omitempty"`
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
func (r *CreateHotelRequest) ToUseCaseRequest(ownerID int64) *createHotel.Request {
	roomTypes := make([]createHotel.RoomTypeInput, 0, len(r.RoomTypes))
	for _, rt := range r.RoomTypes {
		roomTypes = append(roomTypes, createHotel.RoomTypeInput{
			Title:          rt.Title,
			CapacityAdults: rt.CapacityAdults,
			Quantity:       rt.Quantity,
			PricePerNight:  rt.PricePerNight,
			Amenities:      rt.Amenities,
		})
	}

	return &createHotel.Request{
		OwnerID:     ownerID,
		Name:        r.Name,
		City:        r.City,
		Country:     r.Country,
		Images:      r.Images,
		Description: r.Description,
		Amenities:   r.Amenities,
		Rating:      r.Rating,
		Currency:    r.Currency,
		RoomTypes:   roomTypes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createHotel.Response) *HotelResponse {
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
