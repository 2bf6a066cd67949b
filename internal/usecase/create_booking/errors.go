package create_booking

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не найден
	ErrTeacherNotFound = errors.New("create_booking: teacher not found")

	// ErrSlotNotAvailable возвращается, когда слота нет в расписании преподавателя
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available in teacher schedule")

	// ErrPlaceMismatch возвращается, когда место не совпадает с расписанием
	ErrPlaceMismatch = errors.New("create_booking: place does not match teacher schedule")

	// ErrSubjectMismatch возвращается, когда предмет не совпадает с предметом преподавателя
	ErrSubjectMismatch = errors.New("create_booking: subject does not match teacher subject")

	// ErrAlreadyBooked возвращается при повторном бронировании того же слота пользователем
	ErrAlreadyBooked = errors.New("create_booking: user already has an active booking for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
