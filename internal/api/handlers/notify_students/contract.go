package notify_students

import (
	"context"

	notifyStudents "github.com/edubridge/EduBridge-BookingService/internal/usecase/notify_students"
)

type NotifyStudentsUseCase interface {
	Execute(ctx context.Context, req *notifyStudents.Request) (*notifyStudents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
