package list_notifications

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	notificationsService "github.com/edubridge/EduBridge-BookingService/internal/service/notifications"
)

type NotificationsService interface {
	List(ctx context.Context, actor domain.Actor) (*notificationsService.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
