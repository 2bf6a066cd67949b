package update_capacity

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не найден
	ErrTeacherNotFound = errors.New("update_capacity: teacher not found")

	// ErrForbidden возвращается, когда актор не администратор
	ErrForbidden = errors.New("update_capacity: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_capacity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_capacity: internal error")
)
