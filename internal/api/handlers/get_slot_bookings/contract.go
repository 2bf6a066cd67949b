package get_slot_bookings

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/internal/service/bookings/models"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

type BookingsService interface {
	GetSlotBookings(ctx context.Context, actor domain.Actor, teacherID int64, date types.DateString, timeLabel types.TimeLabel, place string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
