package hotels

import (
	"context"
	"errors"
	"fmt"

	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	"github.com/staymarket/booking-service/internal/service/hotels/models"
)

// Service сервис для чтения каталога отелей
type Service struct {
	hotelRepo    HotelRepository
	roomTypeRepo RoomTypeRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса отелей
func NewService(
	hotelRepo HotelRepository,
	roomTypeRepo RoomTypeRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// List возвращает страницу публичного каталога отелей
func (s *Service) List(ctx context.Context, req *models.ListHotelsRequest) (*models.HotelListResponse, error) {
	s.logger.Info("List: fetching hotels catalog, page=%d, pageSize=%d", req.Page, req.PageSize)

	if req.MaxStartingPrice != nil && *req.MaxStartingPrice < 0 {
		s.logger.Warn("List: negative maxStartingPrice=%f", *req.MaxStartingPrice)
		return nil, fmt.Errorf("%w: maxStartingPrice must be >= 0", ErrInvalidInput)
	}

	page, pageSize := models.NormalizePage(req.Page, req.PageSize)

	hotels, total, err := s.hotelRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d of %d hotels", len(hotels), total)
	return models.FromDomainHotelList(hotels, total, page, pageSize), nil
}

// GetByID возвращает карточку отеля вместе с его room types
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HotelDetailsResponse, error) {
	s.logger.Info("GetByID: fetching hotel id=%d", id)

	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("GetByID: hotel id=%d not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetByID: repository error for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	roomTypes, err := s.roomTypeRepo.ListByHotelID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list room types for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list room types: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched hotel id=%d with %d room types", id, len(roomTypes))
	return &models.HotelDetailsResponse{
		Hotel:     *models.FromDomainHotel(hotel),
		RoomTypes: models.FromDomainRoomTypeList(roomTypes),
	}, nil
}

// GetOwnerHotels возвращает отели владельца со счетчиками для дашборда
func (s *Service) GetOwnerHotels(ctx context.Context, ownerID int64) (*models.OwnerHotelListResponse, error) {
	s.logger.Info("GetOwnerHotels: fetching hotels for owner=%d", ownerID)

	hotels, err := s.hotelRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetOwnerHotels: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetOwnerHotels - repository error: %v", ErrInternal, err)
	}

	resp := &models.OwnerHotelListResponse{
		Hotels: make([]models.OwnerHotelResponse, 0, len(hotels)),
	}
	if len(hotels) == 0 {
		s.logger.Info("GetOwnerHotels: owner=%d has no hotels", ownerID)
		return resp, nil
	}

	hotelIDs := make([]int64, 0, len(hotels))
	for _, h := range hotels {
		hotelIDs = append(hotelIDs, h.ID)
	}

	bookingStats, err := s.bookingRepo.StatsByHotelIDs(ctx, hotelIDs)
	if err != nil {
		s.logger.Error("GetOwnerHotels: failed to get booking stats for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetOwnerHotels - failed to get booking stats: %v", ErrInternal, err)
	}

	totalRooms, err := s.roomTypeRepo.TotalRoomsByHotelIDs(ctx, hotelIDs)
	if err != nil {
		s.logger.Error("GetOwnerHotels: failed to get room counts for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetOwnerHotels - failed to get room counts: %v", ErrInternal, err)
	}

	for _, h := range hotels {
		stats := bookingStats[h.ID]
		resp.Hotels = append(resp.Hotels, models.OwnerHotelResponse{
			HotelResponse:       *models.FromDomainHotel(h),
			TotalBookingsCount:  stats.TotalBookingsCount,
			ActiveRequestsCount: stats.ActiveRequestsCount,
			TotalRoomsCount:     totalRooms[h.ID],
		})
	}

	s.logger.Info("GetOwnerHotels: successfully fetched %d hotels for owner=%d", len(resp.Hotels), ownerID)
	return resp, nil
}
