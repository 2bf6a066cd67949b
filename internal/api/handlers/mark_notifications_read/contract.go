package mark_notifications_read

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

type NotificationsService interface {
	MarkAllRead(ctx context.Context, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
