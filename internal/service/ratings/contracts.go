package ratings

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// RatingRepository интерфейс репозитория оценок
type RatingRepository interface {
	Upsert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	Aggregate(ctx context.Context, teacherID int64) (domain.RatingAggregate, error)
	HasRated(ctx context.Context, userID, teacherID int64) (bool, error)
}

// TeacherRepository интерфейс репозитория преподавателей
type TeacherRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
	UpdateRatingAggregate(ctx context.Context, id int64, ratingAvg float64, ratingCount int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
