package bookings

import (
	"context"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
	GetBySlot(ctx context.Context, slot domain.SlotKey, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	MarkRated(ctx context.Context, id int64) error
	ClosePopup(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
