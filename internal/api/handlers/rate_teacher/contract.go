package rate_teacher

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	ratingsService "github.com/edubridge/EduBridge-BookingService/internal/service/ratings"
)

type RatingsService interface {
	Rate(ctx context.Context, actor domain.Actor, teacherID int64, value float64) (*ratingsService.RateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
