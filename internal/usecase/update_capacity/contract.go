package update_capacity

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// TeacherRepository интерфейс репозитория преподавателей
type TeacherRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
	UpdateMaxStudents(ctx context.Context, id int64, maxStudents int) error
}

// WaitlistPromoter интерфейс продвижения очереди ожидания
// Полный проход по расписанию выполняется в той же транзакции,
// что и смена вместимости
type WaitlistPromoter interface {
	PromoteForSchedule(ctx context.Context, teacher *domain.Teacher) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
