package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staymarket/booking-service/internal/domain"
	bookingRepo "github.com/staymarket/booking-service/internal/infra/storage/booking"
	"github.com/staymarket/booking-service/internal/service/bookings/models"
)

// --- Mocks ---

type mockBookingRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Booking, error)
	listFn    func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	return m.listFn(ctx, filter)
}

type mockHotelRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Hotel, error)
	getByOwnerIDFn func(ctx context.Context, ownerID int64) ([]*domain.Hotel, error)
}

func (m *mockHotelRepo) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockHotelRepo) GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
	return m.getByOwnerIDFn(ctx, ownerID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func storedBooking() *domain.Booking {
	return &domain.Booking{
		ID:      42,
		HotelID: 1,
		GuestID: 7,
		Status:  domain.StatusPending,
	}
}

func TestGetByID_GuestAccess(t *testing.T) {
	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(), nil
		},
	}

	svc := NewService(bookings, nil, nopLogger{})
	resp, err := svc.GetByID(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestGetByID_OwnerAccess(t *testing.T) {
	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(), nil
		},
	}
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return &domain.Hotel{ID: 1, OwnerID: 100}, nil
		},
	}

	svc := NewService(bookings, hotels, nopLogger{})
	resp, err := svc.GetByID(context.Background(), 42, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(), nil
		},
	}
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return &domain.Hotel{ID: 1, OwnerID: 100}, nil
		},
	}

	svc := NewService(bookings, hotels, nopLogger{})
	_, err := svc.GetByID(context.Background(), 42, 555)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	svc := NewService(bookings, nil, nopLogger{})
	_, err := svc.GetByID(context.Background(), 42, 7)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetGuestBookings_FiltersByGuest(t *testing.T) {
	var gotFilter domain.BookingsFilter

	bookings := &mockBookingRepo{
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
			gotFilter = filter
			return []*domain.Booking{storedBooking()}, 1, nil
		},
	}

	svc := NewService(bookings, nil, nopLogger{})
	resp, err := svc.GetGuestBookings(context.Background(), &models.GetGuestBookingsRequest{GuestID: 7})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.GuestID)
	assert.Equal(t, int64(7), *gotFilter.GuestID)
	assert.Equal(t, uint64(domain.DefaultPageSize), gotFilter.Limit)
	assert.Equal(t, int64(1), resp.Total)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetGuestBookings_InvalidStatus(t *testing.T) {
	svc := NewService(nil, nil, nopLogger{})

	status := "confirmed" // не существует в этой модели статусов
	_, err := svc.GetGuestBookings(context.Background(), &models.GetGuestBookingsRequest{
		GuestID: 7,
		Status:  &status,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOwnerBookings_CollectsOwnerHotels(t *testing.T) {
	var gotFilter domain.BookingsFilter

	bookings := &mockBookingRepo{
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
			gotFilter = filter
			return []*domain.Booking{storedBooking()}, 1, nil
		},
	}
	hotels := &mockHotelRepo{
		getByOwnerIDFn: func(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
			return []*domain.Hotel{
				{ID: 1, OwnerID: 100},
				{ID: 2, OwnerID: 100},
			}, nil
		},
	}

	svc := NewService(bookings, hotels, nopLogger{})
	_, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{OwnerID: 100})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, gotFilter.HotelIDs)
}

func TestGetOwnerBookings_NoHotelsEmptyPage(t *testing.T) {
	listCalled := false

	bookings := &mockBookingRepo{
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
			listCalled = true
			return nil, 0, nil
		},
	}
	hotels := &mockHotelRepo{
		getByOwnerIDFn: func(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
			return nil, nil
		},
	}

	svc := NewService(bookings, hotels, nopLogger{})
	resp, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{OwnerID: 100})

	require.NoError(t, err)
	assert.False(t, listCalled)
	assert.Empty(t, resp.Bookings)
	assert.Equal(t, int64(0), resp.Total)
}

func TestGetOwnerBookings_ForeignHotelFilterDenied(t *testing.T) {
	hotels := &mockHotelRepo{
		getByOwnerIDFn: func(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
			return []*domain.Hotel{{ID: 1, OwnerID: 100}}, nil
		},
	}

	foreignHotelID := int64(55)
	svc := NewService(nil, hotels, nopLogger{})
	_, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerID: 100,
		HotelID: &foreignHotelID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
