package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staymarket/booking-service/internal/domain"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	roomTypeRepo "github.com/staymarket/booking-service/internal/infra/storage/roomtype"
)

// --- Mocks ---

type mockHotelRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Hotel, error)
}

func (m *mockHotelRepo) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	return m.getByIDFn(ctx, id)
}

type mockRoomTypeRepo struct {
	getByIDAndHotelFn func(ctx context.Context, id, hotelID int64) (*domain.RoomType, error)
}

func (m *mockRoomTypeRepo) GetByIDAndHotel(ctx context.Context, id, hotelID int64) (*domain.RoomType, error) {
	return m.getByIDAndHotelFn(ctx, id, hotelID)
}

type mockBookingRepo struct {
	createFn func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

type mockEventPublisher struct {
	bookingCreatedFn func(ctx context.Context, booking *domain.Booking) error
}

func (m *mockEventPublisher) BookingCreated(ctx context.Context, booking *domain.Booking) error {
	return m.bookingCreatedFn(ctx, booking)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func sampleRequest() *Request {
	return &Request{
		GuestID:        7,
		HotelID:        1,
		RoomTypeID:     10,
		CheckIn:        date(2026, 10, 15),
		CheckOut:       date(2026, 10, 18),
		GuestsAdults:   4,
		RoomsRequested: 2,
		GuestInfo:      GuestInfoInput{FullName: "Jan Novak", Phone: "+420123456789"},
	}
}

func TestExecute_Success_PriceSnapshot(t *testing.T) {
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return sampleHotel(), nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		getByIDAndHotelFn: func(ctx context.Context, id, hotelID int64) (*domain.RoomType, error) {
			return sampleRoomType(), nil
		},
	}
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 42
			return booking, nil
		},
	}

	uc := NewUseCase(hotels, roomTypes, bookings, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, 3, resp.Nights)

	// Снапшот цены: из room type и отеля, а не из запроса
	assert.Equal(t, 80.0, resp.Booking.PricePerNight)
	assert.Equal(t, 80.0*3*2, resp.Booking.TotalAmount)
	assert.Equal(t, "EUR", resp.Booking.Currency)
}

func TestExecute_HotelNotFound(t *testing.T) {
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return nil, hotelRepo.ErrHotelNotFound
		},
	}

	uc := NewUseCase(hotels, nil, nil, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrHotelNotFound)
	assert.Nil(t, resp)
}

func TestExecute_RoomTypeScopedToHotel(t *testing.T) {
	var requestedHotelID int64

	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return sampleHotel(), nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		getByIDAndHotelFn: func(ctx context.Context, id, hotelID int64) (*domain.RoomType, error) {
			requestedHotelID = hotelID
			return nil, roomTypeRepo.ErrRoomTypeNotFound
		},
	}

	uc := NewUseCase(hotels, roomTypes, nil, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
	assert.Equal(t, int64(1), requestedHotelID)
}

func TestExecute_InventoryCheckBeforeCreate(t *testing.T) {
	created := false

	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return sampleHotel(), nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		getByIDAndHotelFn: func(ctx context.Context, id, hotelID int64) (*domain.RoomType, error) {
			return sampleRoomType(), nil
		},
	}
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			created = true
			return booking, nil
		},
	}

	req := sampleRequest()
	req.GuestsAdults = 12
	req.RoomsRequested = 6 // quantity = 5

	uc := NewUseCase(hotels, roomTypes, bookings, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInsufficientInventory)
	assert.False(t, created)
}

func TestExecute_EventPublishFailureDoesNotFailBooking(t *testing.T) {
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return sampleHotel(), nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		getByIDAndHotelFn: func(ctx context.Context, id, hotelID int64) (*domain.RoomType, error) {
			return sampleRoomType(), nil
		},
	}
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 42
			return booking, nil
		},
	}
	events := &mockEventPublisher{
		bookingCreatedFn: func(ctx context.Context, booking *domain.Booking) error {
			return errors.New("broker unavailable")
		},
	}

	uc := NewUseCase(hotels, roomTypes, bookings, events, nopLogger{})
	resp, err := uc.Execute(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Booking.ID)
}

func TestExecute_GuestInfoNormalized(t *testing.T) {
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return sampleHotel(), nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		getByIDAndHotelFn: func(ctx context.Context, id, hotelID int64) (*domain.RoomType, error) {
			return sampleRoomType(), nil
		},
	}
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			return booking, nil
		},
	}

	req := sampleRequest()
	req.GuestInfo.FullName = "  Jan Novak  "

	uc := NewUseCase(hotels, roomTypes, bookings, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Jan Novak", resp.Booking.GuestInfo.FullName)
}
