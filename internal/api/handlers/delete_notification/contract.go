package delete_notification

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

type NotificationsService interface {
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
