package create_hotel

import (
	"context"

	createHotel "github.com/staymarket/booking-service/internal/usecase/create_hotel"
)

type CreateHotelUseCase interface {
	Execute(ctx context.Context, req *createHotel.Request) (*createHotel.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
