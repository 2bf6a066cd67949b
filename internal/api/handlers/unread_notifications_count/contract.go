package unread_notifications_count

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

type NotificationsService interface {
	UnreadCount(ctx context.Context, actor domain.Actor) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
