package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/staymarket/booking-service/internal/domain"
	bookingRepo "github.com/staymarket/booking-service/internal/infra/storage/booking"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	"github.com/staymarket/booking-service/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	hotelRepo   HotelRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	hotelRepo HotelRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступ имеют только гость, создавший заявку, и владелец отеля
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetGuestBookings получает историю бронирований гостя
// Опционально фильтрует по статусу
func (s *Service) GetGuestBookings(ctx context.Context, req *models.GetGuestBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetGuestBookings: fetching bookings for guest=%d, status=%v", req.GuestID, req.Status)

	status, err := s.parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetGuestBookings: invalid status=%s for guest=%d", *req.Status, req.GuestID)
		return nil, err
	}

	page, pageSize := models.NormalizePage(req.Page, req.PageSize)

	filter := domain.BookingsFilter{
		GuestID: &req.GuestID,
		Status:  status,
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetGuestBookings: repository error for guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: GetGuestBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestBookings: successfully fetched %d of %d bookings for guest=%d", len(bookings), total, req.GuestID)
	return models.FromDomainBookingList(bookings, total, page, pageSize), nil
}

// GetOwnerBookings получает заявки по отелям владельца
// Опционально фильтрует по конкретному отелю и статусу
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%d, hotel=%v, status=%v", req.OwnerID, req.HotelID, req.Status)

	status, err := s.parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetOwnerBookings: invalid status=%s for owner=%d", *req.Status, req.OwnerID)
		return nil, err
	}

	page, pageSize := models.NormalizePage(req.Page, req.PageSize)

	hotelIDs, err := s.resolveOwnerHotelIDs(ctx, req.OwnerID, req.HotelID)
	if err != nil {
		return nil, err
	}

	// У владельца нет отелей - возвращаем пустую страницу, а не ошибку
	if len(hotelIDs) == 0 {
		s.logger.Info("GetOwnerBookings: owner=%d has no hotels", req.OwnerID)
		return models.FromDomainBookingList(nil, 0, page, pageSize), nil
	}

	filter := domain.BookingsFilter{
		HotelIDs: hotelIDs,
		Status:   status,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: successfully fetched %d of %d bookings for owner=%d", len(bookings), total, req.OwnerID)
	return models.FromDomainBookingList(bookings, total, page, pageSize), nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ есть у гостя заявки и у владельца отеля
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.GuestID == userID {
		return nil
	}

	hotel, err := s.hotelRepo.GetByID(ctx, booking.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("checkUserAccess: hotel id=%d not found for booking id=%d", booking.HotelID, booking.ID)
			return ErrAccessDenied
		}
		s.logger.Error("checkUserAccess: failed to get hotel id=%d: %v", booking.HotelID, err)
		return fmt.Errorf("%w: checkUserAccess - failed to get hotel: %v", ErrInternal, err)
	}

	if !hotel.IsOwnedBy(userID) {
		return ErrAccessDenied
	}

	return nil
}

// resolveOwnerHotelIDs возвращает список отелей владельца для фильтрации
// Если указан конкретный отель, проверяет его принадлежность владельцу
func (s *Service) resolveOwnerHotelIDs(ctx context.Context, ownerID int64, hotelID *int64) ([]int64, error) {
	hotels, err := s.hotelRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("resolveOwnerHotelIDs: failed to get hotels for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: resolveOwnerHotelIDs - repository error: %v", ErrInternal, err)
	}

	if hotelID == nil {
		ids := make([]int64, 0, len(hotels))
		for _, h := range hotels {
			ids = append(ids, h.ID)
		}
		return ids, nil
	}

	for _, h := range hotels {
		if h.ID == *hotelID {
			return []int64{*hotelID}, nil
		}
	}

	s.logger.Warn("resolveOwnerHotelIDs: hotel id=%d does not belong to owner=%d", *hotelID, ownerID)
	return nil, ErrAccessDenied
}

// parseStatus конвертирует опциональный строковый статус в доменный
func (s *Service) parseStatus(status *string) (*domain.BookingStatus, error) {
	if status == nil {
		return nil, nil
	}
	parsed, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	return &parsed, nil
}
