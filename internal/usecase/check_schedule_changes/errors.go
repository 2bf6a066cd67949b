package check_schedule_changes

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не найден
	ErrTeacherNotFound = errors.New("check_schedule_changes: teacher not found")

	// ErrForbidden возвращается, когда актор не администратор
	ErrForbidden = errors.New("check_schedule_changes: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_schedule_changes: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_schedule_changes: internal error")
)
