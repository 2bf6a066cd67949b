package create_booking

import (
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TeacherID <= 0 {
		return fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	if req.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}

	if req.Place == "" {
		return fmt.Errorf("%w: place is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет запрошенный слот против расписания преподавателя
func validateSlot(teacher *domain.Teacher, req *Request) error {
	if !teacher.Schedule.HasSlot(req.Date, req.Time) {
		return ErrSlotNotAvailable
	}

	if teacher.Schedule.PlaceFor(req.Date, req.Time) != req.Place {
		return ErrPlaceMismatch
	}

	if teacher.Subject != req.Subject {
		return ErrSubjectMismatch
	}

	return nil
}

// countActive считает occupancy слота по заблокированному снимку его бронирований
func countActive(bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() {
			count++
		}
	}
	return count
}

// hasActiveForUser проверяет, есть ли у пользователя неотменённое
// бронирование этого же слота
func hasActiveForUser(bookings []*domain.Booking, userID int64) bool {
	for _, b := range bookings {
		if b.UserID == userID {
			return true
		}
	}
	return false
}
