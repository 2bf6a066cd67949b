package notify_students

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не найден
	ErrTeacherNotFound = errors.New("notify_students: teacher not found")

	// ErrForbidden возвращается, когда актор не администратор
	ErrForbidden = errors.New("notify_students: access denied")

	// ErrNoValidBookings возвращается, когда ни одно из переданных
	// бронирований не принадлежит преподавателю или все уже отменены
	ErrNoValidBookings = errors.New("notify_students: no valid bookings to process")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("notify_students: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("notify_students: internal error")
)
