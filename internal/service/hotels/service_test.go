package hotels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staymarket/booking-service/internal/domain"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	"github.com/staymarket/booking-service/internal/service/hotels/models"
	"github.com/staymarket/booking-service/pkg/ptr"
)

// --- Mocks ---

type mockHotelRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Hotel, error)
	getByOwnerIDFn func(ctx context.Context, ownerID int64) ([]*domain.Hotel, error)
	listFn         func(ctx context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, int64, error)
}

func (m *mockHotelRepo) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockHotelRepo) GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
	return m.getByOwnerIDFn(ctx, ownerID)
}

func (m *mockHotelRepo) List(ctx context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, int64, error) {
	return m.listFn(ctx, filter)
}

type mockRoomTypeRepo struct {
	listByHotelIDFn        func(ctx context.Context, hotelID int64) ([]*domain.RoomType, error)
	totalRoomsByHotelIDsFn func(ctx context.Context, hotelIDs []int64) (map[int64]int64, error)
}

func (m *mockRoomTypeRepo) ListByHotelID(ctx context.Context, hotelID int64) ([]*domain.RoomType, error) {
	return m.listByHotelIDFn(ctx, hotelID)
}

func (m *mockRoomTypeRepo) TotalRoomsByHotelIDs(ctx context.Context, hotelIDs []int64) (map[int64]int64, error) {
	return m.totalRoomsByHotelIDsFn(ctx, hotelIDs)
}

type mockBookingRepo struct {
	statsByHotelIDsFn func(ctx context.Context, hotelIDs []int64) (map[int64]domain.HotelOwnerStats, error)
}

func (m *mockBookingRepo) StatsByHotelIDs(ctx context.Context, hotelIDs []int64) (map[int64]domain.HotelOwnerStats, error) {
	return m.statsByHotelIDsFn(ctx, hotelIDs)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func catalogHotel() *domain.Hotel {
	return &domain.Hotel{
		ID:                    1,
		OwnerID:               100,
		Name:                  "Riverside Inn",
		City:                  "Prague",
		Country:               "Czech Republic",
		Currency:              "EUR",
		StartingPricePerNight: 55,
	}
}

func TestList_PassesFilterAndPagination(t *testing.T) {
	var gotFilter domain.HotelsFilter

	hotels := &mockHotelRepo{
		listFn: func(ctx context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, int64, error) {
			gotFilter = filter
			return []*domain.Hotel{catalogHotel()}, 1, nil
		},
	}

	svc := NewService(hotels, nil, nil, nopLogger{})
	resp, err := svc.List(context.Background(), &models.ListHotelsRequest{
		Search:    ptr.Ptr("Prague"),
		Amenities: []string{"wifi", "pool"},
		Page:      2,
		PageSize:  10,
	})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Search)
	assert.Equal(t, "Prague", *gotFilter.Search)
	assert.Equal(t, []string{"wifi", "pool"}, gotFilter.Amenities)
	assert.Equal(t, uint64(10), gotFilter.Limit)
	assert.Equal(t, uint64(10), gotFilter.Offset)

	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, uint64(2), resp.Page)
}

func TestList_NegativeMaxPriceRejected(t *testing.T) {
	svc := NewService(nil, nil, nil, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListHotelsRequest{
		MaxStartingPrice: ptr.Ptr(-10.0),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_WithRoomTypes(t *testing.T) {
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return catalogHotel(), nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		listByHotelIDFn: func(ctx context.Context, hotelID int64) ([]*domain.RoomType, error) {
			return []*domain.RoomType{
				{ID: 10, HotelID: hotelID, Title: "Standard Double", CapacityAdults: 2, Quantity: 5, PricePerNight: 80},
			}, nil
		},
	}

	svc := NewService(hotels, roomTypes, nil, nopLogger{})
	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Hotel.ID)
	require.Len(t, resp.RoomTypes, 1)
	assert.Equal(t, "Standard Double", resp.RoomTypes[0].Title)

	// nil-слайсы в domain модели сериализуются как пустые массивы
	assert.NotNil(t, resp.Hotel.Images)
	assert.NotNil(t, resp.Hotel.Amenities)
}

func TestGetByID_NotFound(t *testing.T) {
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return nil, hotelRepo.ErrHotelNotFound
		},
	}

	svc := NewService(hotels, nil, nil, nopLogger{})
	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestGetOwnerHotels_CombinesCounters(t *testing.T) {
	hotels := &mockHotelRepo{
		getByOwnerIDFn: func(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
			h2 := catalogHotel()
			h2.ID = 2
			h2.Name = "Hilltop Lodge"
			return []*domain.Hotel{catalogHotel(), h2}, nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		totalRoomsByHotelIDsFn: func(ctx context.Context, hotelIDs []int64) (map[int64]int64, error) {
			assert.Equal(t, []int64{1, 2}, hotelIDs)
			return map[int64]int64{1: 8, 2: 3}, nil
		},
	}
	bookings := &mockBookingRepo{
		statsByHotelIDsFn: func(ctx context.Context, hotelIDs []int64) (map[int64]domain.HotelOwnerStats, error) {
			return map[int64]domain.HotelOwnerStats{
				1: {TotalBookingsCount: 12, ActiveRequestsCount: 4},
			}, nil
		},
	}

	svc := NewService(hotels, roomTypes, bookings, nopLogger{})
	resp, err := svc.GetOwnerHotels(context.Background(), 100)

	require.NoError(t, err)
	require.Len(t, resp.Hotels, 2)

	assert.Equal(t, int64(12), resp.Hotels[0].TotalBookingsCount)
	assert.Equal(t, int64(4), resp.Hotels[0].ActiveRequestsCount)
	assert.Equal(t, int64(8), resp.Hotels[0].TotalRoomsCount)

	// Отель без бронирований получает нулевые счетчики
	assert.Equal(t, int64(0), resp.Hotels[1].TotalBookingsCount)
	assert.Equal(t, int64(3), resp.Hotels[1].TotalRoomsCount)
}

func TestGetOwnerHotels_NoHotels(t *testing.T) {
	statsCalled := false

	hotels := &mockHotelRepo{
		getByOwnerIDFn: func(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
			return nil, nil
		},
	}
	bookings := &mockBookingRepo{
		statsByHotelIDsFn: func(ctx context.Context, hotelIDs []int64) (map[int64]domain.HotelOwnerStats, error) {
			statsCalled = true
			return nil, nil
		},
	}

	svc := NewService(hotels, nil, bookings, nopLogger{})
	resp, err := svc.GetOwnerHotels(context.Background(), 100)

	require.NoError(t, err)
	assert.Empty(t, resp.Hotels)
	assert.False(t, statsCalled)
}
