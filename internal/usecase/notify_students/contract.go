package notify_students

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDsAndTeacher(ctx context.Context, ids []int64, teacherID int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TeacherRepository интерфейс репозитория преподавателей
type TeacherRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// MailServiceClient интерфейс клиента почтового сервиса
type MailServiceClient interface {
	Send(ctx context.Context, subject, body, recipient string) error
}

// WaitlistPromoter интерфейс продвижения очереди ожидания
// Массовая отмена может освободить несколько мест в одном слоте,
// поэтому продвижение выполняется по каждому затронутому слоту
type WaitlistPromoter interface {
	PromoteSlots(ctx context.Context, teacher *domain.Teacher, slots []domain.SlotKey) ([]*domain.Booking, error)
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
