package check_schedule_changes

import (
	"context"

	checkScheduleChanges "github.com/edubridge/EduBridge-BookingService/internal/usecase/check_schedule_changes"
)

type CheckScheduleChangesUseCase interface {
	Execute(ctx context.Context, req *checkScheduleChanges.Request) (*checkScheduleChanges.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
