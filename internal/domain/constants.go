package domain

// Business validation constants
const (
	MinStudentsPerGroup = 1
	MaxStudentsPerGroup = 100

	MinRatingValue = 1.0
	MaxRatingValue = 5.0

	MaxBulkMessageLength = 1000
)

// DefaultCancellationNoticeHours минимальное время до начала занятия,
// после которого отмена подтверждённого бронирования запрещена
const DefaultCancellationNoticeHours = 48

// ActiveStatuses статусы, занимающие место в слоте
// Используются при подсчёте occupancy
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusModified,
}

// NonCancelledStatuses статусы, блокирующие повторное бронирование
// того же слота тем же пользователем
var NonCancelledStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusModified,
}
