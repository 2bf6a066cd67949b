package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrTeacherNotFound возвращается, когда преподаватель бронирования не найден
	ErrTeacherNotFound = errors.New("cancel_booking: teacher not found")

	// ErrForbidden возвращается, когда актор не владеет бронированием и не администратор
	ErrForbidden = errors.New("cancel_booking: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене
	// cancelled - терминальный статус, выход из него запрещен
	ErrAlreadyCancelled = errors.New("cancel_booking: booking is already cancelled")

	// ErrTooLateToCancel возвращается, когда до начала занятия осталось
	// меньше минимального срока отмены
	ErrTooLateToCancel = errors.New("cancel_booking: cancellation window has passed")

	// ErrInvalidBookingTime возвращается, когда метку времени бронирования
	// не удалось разобрать ни одним из поддерживаемых форматов
	ErrInvalidBookingTime = errors.New("cancel_booking: booking time is not parseable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
