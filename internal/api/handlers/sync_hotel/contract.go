package sync_hotel

import (
	"context"

	syncHotel "github.com/staymarket/booking-service/internal/usecase/sync_hotel"
)

type SyncHotelUseCase interface {
	Execute(ctx context.Context, req *syncHotel.Request) (*syncHotel.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
