package get_booking

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
