package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staymarket/booking-service/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleHotel() *domain.Hotel {
	return &domain.Hotel{
		ID:       1,
		OwnerID:  100,
		Name:     "Riverside Inn",
		City:     "Prague",
		Country:  "Czech Republic",
		Currency: "EUR",
	}
}

func sampleRoomType() *domain.RoomType {
	return &domain.RoomType{
		ID:             10,
		HotelID:        1,
		Title:          "Standard Double",
		CapacityAdults: 2,
		Quantity:       5,
		PricePerNight:  80,
	}
}

func TestCalcNights(t *testing.T) {
	assert.Equal(t, 3, calcNights(date(2026, 10, 15), date(2026, 10, 18)))
	assert.Equal(t, 1, calcNights(date(2026, 10, 15), date(2026, 10, 16)))
	assert.Equal(t, 0, calcNights(date(2026, 10, 15), date(2026, 10, 15)))
	assert.Equal(t, -2, calcNights(date(2026, 10, 15), date(2026, 10, 13)))

	// Переход через границу месяца
	assert.Equal(t, 2, calcNights(date(2026, 1, 31), date(2026, 2, 2)))
}

func TestCalcNights_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC)
	checkOut := time.Date(2026, 10, 18, 1, 15, 0, 0, time.UTC)

	assert.Equal(t, 3, calcNights(checkIn, checkOut))
}

func TestEvaluateStay_Success(t *testing.T) {
	quote, err := evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 18), 4, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 80.0, quote.PricePerNight)
	assert.Equal(t, 80.0*3*2, quote.TotalAmount)
	assert.Equal(t, "EUR", quote.Currency)
}

func TestEvaluateStay_InvalidDateRange(t *testing.T) {
	_, err := evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 18), date(2026, 10, 15), 2, 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 15), 2, 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestEvaluateStay_InvalidCounts(t *testing.T) {
	_, err := evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 16), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	_, err = evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 16), 2, 0)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestEvaluateStay_CapacityFloor(t *testing.T) {
	// 5 взрослых при вместимости 2 требуют минимум 3 номера
	_, err := evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 18), 5, 2)
	assert.ErrorIs(t, err, ErrInsufficientRoomsForGuests)

	quote, err := evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 18), 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 80.0*3*3, quote.TotalAmount)
}

func TestEvaluateStay_InventoryCeiling(t *testing.T) {
	// У room type заявлено 5 номеров
	_, err := evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 18), 10, 6)
	assert.ErrorIs(t, err, ErrInsufficientInventory)

	quote, err := evaluateStay(sampleHotel(), sampleRoomType(), date(2026, 10, 15), date(2026, 10, 18), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 80.0*3*5, quote.TotalAmount)
}

func TestEvaluateStay_DefaultCurrency(t *testing.T) {
	hotel := sampleHotel()
	hotel.Currency = ""

	quote, err := evaluateStay(hotel, sampleRoomType(), date(2026, 10, 15), date(2026, 10, 16), 2, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, quote.Currency)
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		GuestID:    7,
		HotelID:    1,
		RoomTypeID: 10,
		CheckIn:    date(2026, 10, 15),
		CheckOut:   date(2026, 10, 18),
		GuestInfo:  GuestInfoInput{FullName: "Jan Novak", Phone: "+420123456789"},
	}
	assert.NoError(t, validateRequest(valid))

	noGuest := *valid
	noGuest.GuestID = 0
	assert.ErrorIs(t, validateRequest(&noGuest), ErrInvalidID)

	noDates := *valid
	noDates.CheckIn = time.Time{}
	assert.ErrorIs(t, validateRequest(&noDates), ErrInvalidDateRange)

	noContact := *valid
	noContact.GuestInfo = GuestInfoInput{FullName: "   ", Phone: "+420123456789"}
	assert.ErrorIs(t, validateRequest(&noContact), ErrInvalidGuestInfo)
}

func TestNormalizeGuestInfo(t *testing.T) {
	info := normalizeGuestInfo(GuestInfoInput{
		FullName:    "  Jan Novak  ",
		Phone:       " +420123456789 ",
		Email:       "",
		ArrivalTime: " 14:00 ",
		Notes:       "  ",
	})

	assert.Equal(t, "Jan Novak", info.FullName)
	assert.Equal(t, "+420123456789", info.Phone)
	assert.Equal(t, "", info.Email)
	assert.Equal(t, "14:00", info.ArrivalTime)
	assert.Equal(t, "", info.Notes)
}
