package sync_hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staymarket/booking-service/internal/domain"
	"github.com/staymarket/booking-service/pkg/ptr"
)

func existingRoster() []*domain.RoomType {
	return []*domain.RoomType{
		{ID: 10, HotelID: 1, Title: "Standard Double", CapacityAdults: 2, Quantity: 5, PricePerNight: 80},
		{ID: 11, HotelID: 1, Title: "Suite", CapacityAdults: 4, Quantity: 2, PricePerNight: 200},
		{ID: 12, HotelID: 1, Title: "Single", CapacityAdults: 1, Quantity: 3, PricePerNight: 55},
	}
}

func TestBuildRosterDiff_UpdateCreateDelete(t *testing.T) {
	incoming := []RoomTypeInput{
		// id=10 обновляется с новой ценой
		{ID: ptr.Ptr(int64(10)), Title: "Standard Double", CapacityAdults: 2, Quantity: 6, PricePerNight: 90},
		// без id - создание
		{Title: "Family Room", CapacityAdults: 5, Quantity: 1, PricePerNight: 250},
		// id=11 остается
		{ID: ptr.Ptr(int64(11)), Title: "Suite", CapacityAdults: 4, Quantity: 2, PricePerNight: 200},
		// id=12 не упомянут - удаляется
	}

	diff, err := buildRosterDiff(1, existingRoster(), incoming)
	require.NoError(t, err)

	require.Len(t, diff.toUpdate, 2)
	assert.Equal(t, int64(10), diff.toUpdate[0].ID)
	assert.Equal(t, 90.0, diff.toUpdate[0].PricePerNight)
	assert.Equal(t, 6, diff.toUpdate[0].Quantity)
	assert.Equal(t, int64(11), diff.toUpdate[1].ID)

	require.Len(t, diff.toCreate, 1)
	assert.Equal(t, "Family Room", diff.toCreate[0].Title)
	assert.Equal(t, int64(1), diff.toCreate[0].HotelID)

	assert.Equal(t, []int64{12}, diff.toDeleteIDs)

	// Целевой набор - обновления и создания в порядке запроса
	require.Len(t, diff.target, 3)
}

func TestBuildRosterDiff_ForeignID(t *testing.T) {
	incoming := []RoomTypeInput{
		{ID: ptr.Ptr(int64(999)), Title: "Ghost Room", CapacityAdults: 2, Quantity: 1, PricePerNight: 10},
	}

	_, err := buildRosterDiff(1, existingRoster(), incoming)
	assert.ErrorIs(t, err, ErrInvalidRoomTypeID)
}

func TestBuildRosterDiff_DuplicateID(t *testing.T) {
	incoming := []RoomTypeInput{
		{ID: ptr.Ptr(int64(10)), Title: "Standard Double", CapacityAdults: 2, Quantity: 5, PricePerNight: 80},
		{ID: ptr.Ptr(int64(10)), Title: "Standard Twin", CapacityAdults: 2, Quantity: 5, PricePerNight: 85},
	}

	_, err := buildRosterDiff(1, existingRoster(), incoming)
	assert.ErrorIs(t, err, ErrInvalidRoomTypeID)
}

func TestBuildRosterDiff_AllNewRoster(t *testing.T) {
	incoming := []RoomTypeInput{
		{Title: "Cabin", CapacityAdults: 2, Quantity: 4, PricePerNight: 70},
	}

	diff, err := buildRosterDiff(1, existingRoster(), incoming)
	require.NoError(t, err)

	assert.Empty(t, diff.toUpdate)
	require.Len(t, diff.toCreate, 1)
	assert.ElementsMatch(t, []int64{10, 11, 12}, diff.toDeleteIDs)
	require.Len(t, diff.target, 1)
}

func TestBuildRosterDiff_PreservesCreatedAt(t *testing.T) {
	incoming := []RoomTypeInput{
		{ID: ptr.Ptr(int64(10)), Title: "Standard Double", CapacityAdults: 2, Quantity: 5, PricePerNight: 80},
	}

	diff, err := buildRosterDiff(1, existingRoster(), incoming)
	require.NoError(t, err)
	require.Len(t, diff.toUpdate, 1)
	assert.Equal(t, existingRoster()[0].CreatedAt, diff.toUpdate[0].CreatedAt)
}
