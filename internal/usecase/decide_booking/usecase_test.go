package decide_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staymarket/booking-service/internal/domain"
	bookingRepo "github.com/staymarket/booking-service/internal/infra/storage/booking"
)

// --- Mocks ---

type mockBookingRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Booking, error)
	decideFn  func(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) Decide(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error) {
	return m.decideFn(ctx, id, status, decidedBy, reason)
}

type mockHotelRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Hotel, error)
}

func (m *mockHotelRepo) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	return m.getByIDFn(ctx, id)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:      42,
		HotelID: 1,
		GuestID: 7,
		Status:  domain.StatusPending,
	}
}

func ownedHotel() *domain.Hotel {
	return &domain.Hotel{ID: 1, OwnerID: 100}
}

func TestExecute_Approve_Success(t *testing.T) {
	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(), nil
		},
		decideFn: func(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error) {
			b := pendingBooking()
			b.Status = status
			b.OwnerDecision = &domain.OwnerDecision{
				DecidedAt: time.Now(),
				DecidedBy: decidedBy,
				Reason:    reason,
			}
			return b, nil
		},
	}
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return ownedHotel(), nil
		},
	}

	uc := NewUseCase(bookings, hotels, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		OwnerID:   100,
		BookingID: 42,
		Decision:  "approved",
		Reason:    "  welcome  ",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, resp.Booking.Status)
	require.NotNil(t, resp.Booking.OwnerDecision)
	assert.Equal(t, int64(100), resp.Booking.OwnerDecision.DecidedBy)
	assert.Equal(t, "welcome", resp.Booking.OwnerDecision.Reason)
}

func TestExecute_InvalidDecision(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:   100,
		BookingID: 42,
		Decision:  "maybe",
	})

	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestExecute_NotOwner(t *testing.T) {
	decideCalled := false

	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(), nil
		},
		decideFn: func(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error) {
			decideCalled = true
			return nil, nil
		},
	}
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return ownedHotel(), nil
		},
	}

	uc := NewUseCase(bookings, hotels, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:   999,
		BookingID: 42,
		Decision:  "approved",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, decideCalled)
}

func TestExecute_AlreadyDecided(t *testing.T) {
	decideCalled := false

	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := pendingBooking()
			b.Status = domain.StatusApproved
			return b, nil
		},
		decideFn: func(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error) {
			decideCalled = true
			return nil, nil
		},
	}
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return ownedHotel(), nil
		},
	}

	uc := NewUseCase(bookings, hotels, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:   100,
		BookingID: 42,
		Decision:  "rejected",
	})

	assert.ErrorIs(t, err, ErrInvalidBookingState)
	assert.False(t, decideCalled)
}

func TestExecute_LostDecisionRace(t *testing.T) {
	// Первое чтение видит pending, но конкурентное решение
	// успевает первым: guarded update возвращает ErrNotPending
	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(), nil
		},
		decideFn: func(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error) {
			return nil, bookingRepo.ErrNotPending
		},
	}
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return ownedHotel(), nil
		},
	}

	uc := NewUseCase(bookings, hotels, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:   100,
		BookingID: 42,
		Decision:  "approved",
	})

	assert.ErrorIs(t, err, ErrInvalidBookingState)
}

func TestExecute_BookingDisappearedDuringDecision(t *testing.T) {
	reads := 0

	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			reads++
			if reads == 1 {
				return pendingBooking(), nil
			}
			return nil, bookingRepo.ErrBookingNotFound
		},
		decideFn: func(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error) {
			return nil, bookingRepo.ErrNotPending
		},
	}
	hotels := &mockHotelRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Hotel, error) {
			return ownedHotel(), nil
		},
	}

	uc := NewUseCase(bookings, hotels, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		OwnerID:   100,
		BookingID: 42,
		Decision:  "approved",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, 2, reads)
}
