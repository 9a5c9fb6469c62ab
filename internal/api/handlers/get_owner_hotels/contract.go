package get_owner_hotels

import (
	"context"

	"github.com/staymarket/booking-service/internal/service/hotels/models"
)

type HotelService interface {
	GetOwnerHotels(ctx context.Context, ownerID int64) (*models.OwnerHotelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
