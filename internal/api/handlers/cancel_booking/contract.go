package cancel_booking

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	cancelBooking "github.com/edubridge/EduBridge-BookingService/internal/usecase/cancel_booking"
)

type CancelBookingUseCase interface {
	Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error)
}

type BookingsService interface {
	MarkRated(ctx context.Context, actor domain.Actor, id int64) error
	ClosePopup(ctx context.Context, actor domain.Actor, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
