package domain

import (
	"time"

	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
// Закрытое множество: других значений статус принимать не может
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusModified  BookingStatus = "modified"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatuses допустимые значения статуса бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusModified,
	StatusCancelled,
}

// IsValidStatus проверяет, что значение входит в закрытое множество статусов
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Booking represents a session booking in the system
type Booking struct {
	ID        int64
	UserID    int64
	TeacherID int64
	Subject   string
	Date      types.DateString
	Time      types.TimeLabel
	Place     string
	Status    BookingStatus

	// Служебные поля рейтингового попапа на клиенте
	Rated         bool
	ClosedPopupAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts against slot capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusModified
}

// IsPending returns true if the booking is waiting for a free spot
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsCancelled returns true if the booking has been cancelled
// Отменённое бронирование терминально: переходов из него нет
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return !b.IsCancelled()
}

// Slot возвращает составной ключ слота этого бронирования
func (b *Booking) Slot() SlotKey {
	return SlotKey{
		TeacherID: b.TeacherID,
		Date:      b.Date,
		Time:      b.Time,
		Place:     b.Place,
	}
}
