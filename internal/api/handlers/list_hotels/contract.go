package list_hotels

import (
	"context"

	"github.com/staymarket/booking-service/internal/service/hotels/models"
)

type HotelService interface {
	List(ctx context.Context, req *models.ListHotelsRequest) (*models.HotelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
