package create_booking

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBySlot(ctx context.Context, slot domain.SlotKey, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// TeacherRepository интерфейс репозитория преподавателей
type TeacherRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
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
