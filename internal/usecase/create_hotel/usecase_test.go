package create_hotel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staymarket/booking-service/internal/domain"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
)

// --- Mocks ---

type mockHotelRepo struct {
	createFn func(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
}

func (m *mockHotelRepo) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	return m.createFn(ctx, hotel)
}

type mockRoomTypeRepo struct {
	createBatchFn func(ctx context.Context, hotelID int64, roomTypes []*domain.RoomType) error
}

func (m *mockRoomTypeRepo) CreateBatch(ctx context.Context, hotelID int64, roomTypes []*domain.RoomType) error {
	return m.createBatchFn(ctx, hotelID, roomTypes)
}

// mockTxManager выполняет closure без настоящей транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func sampleCreateRequest() *Request {
	return &Request{
		OwnerID: 100,
		Name:    "Riverside Inn",
		City:    "Prague",
		Country: "Czech Republic",
		RoomTypes: []RoomTypeInput{
			{Title: "Standard Double", CapacityAdults: 2, Quantity: 5, PricePerNight: 80},
			{Title: "Suite", CapacityAdults: 4, Quantity: 2, PricePerNight: 200},
			{Title: "Single", CapacityAdults: 1, Quantity: 3, PricePerNight: 55},
		},
	}
}

func TestExecute_Success_StartingPriceDerived(t *testing.T) {
	hotels := &mockHotelRepo{
		createFn: func(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
			hotel.ID = 1
			return hotel, nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		createBatchFn: func(ctx context.Context, hotelID int64, rts []*domain.RoomType) error {
			assert.Equal(t, int64(1), hotelID)
			for i, rt := range rts {
				rt.ID = int64(i + 10)
				rt.HotelID = hotelID
			}
			return nil
		},
	}
	txMgr := &mockTxManager{}

	uc := NewUseCase(hotels, roomTypes, txMgr, nopLogger{})
	resp, err := uc.Execute(context.Background(), sampleCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, int64(1), resp.Hotel.ID)
	assert.Len(t, resp.RoomTypes, 3)

	// Стартовая цена - минимум по room types
	assert.Equal(t, 55.0, resp.Hotel.StartingPricePerNight)
	assert.Equal(t, domain.DefaultCurrency, resp.Hotel.Currency)
}

func TestExecute_MissingRequiredField(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nopLogger{})

	req := sampleCreateRequest()
	req.City = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestExecute_NoRoomTypes(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nopLogger{})

	req := sampleCreateRequest()
	req.RoomTypes = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoRoomTypesProvided)
}

func TestExecute_InvalidRoomType(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nopLogger{})

	req := sampleCreateRequest()
	req.RoomTypes[1].Quantity = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestExecute_InvalidRating(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nopLogger{})

	rating := 5.5
	req := sampleCreateRequest()
	req.Rating = &rating

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestExecute_DuplicateHotel(t *testing.T) {
	hotels := &mockHotelRepo{
		createFn: func(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
			return nil, hotelRepo.ErrDuplicateKey
		},
	}
	txMgr := &mockTxManager{}

	uc := NewUseCase(hotels, nil, txMgr, nopLogger{})
	_, err := uc.Execute(context.Background(), sampleCreateRequest())

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestExecute_RoomTypeFailureAbortsTransaction(t *testing.T) {
	hotels := &mockHotelRepo{
		createFn: func(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
			hotel.ID = 1
			return hotel, nil
		},
	}
	roomTypes := &mockRoomTypeRepo{
		createBatchFn: func(ctx context.Context, hotelID int64, rts []*domain.RoomType) error {
			return errors.New("constraint violation")
		},
	}
	txMgr := &mockTxManager{}

	uc := NewUseCase(hotels, roomTypes, txMgr, nopLogger{})
	resp, err := uc.Execute(context.Background(), sampleCreateRequest())

	// Ошибка из closure откатывает транзакцию целиком
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}
