package notify_students

import (
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Actor.IsAdmin {
		return ErrForbidden
	}

	if req.TeacherID <= 0 {
		return fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	if len(req.BookingIDs) == 0 {
		return fmt.Errorf("%w: booking_ids are required", ErrInvalidInput)
	}
	for _, id := range req.BookingIDs {
		if id <= 0 {
			return fmt.Errorf("%w: booking ids must be positive", ErrInvalidInput)
		}
	}

	if req.Action != ActionCancel && req.Action != ActionReschedule {
		return fmt.Errorf("%w: action must be %q or %q", ErrInvalidInput, ActionCancel, ActionReschedule)
	}

	if len(req.Message) > domain.MaxBulkMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxBulkMessageLength)
	}

	// Перенос без полного описания нового слота бессмыслен:
	// письмо обязано назвать новые дату, время и место
	if req.Action == ActionReschedule {
		if req.NewSlot.Date.IsZero() {
			return fmt.Errorf("%w: new_slot date is required for reschedule", ErrInvalidInput)
		}
		if err := req.NewSlot.Date.Validate(); err != nil {
			return fmt.Errorf("%w: invalid new_slot date: %v", ErrInvalidInput, err)
		}
		if req.NewSlot.Time.IsZero() {
			return fmt.Errorf("%w: new_slot time is required for reschedule", ErrInvalidInput)
		}
		if err := req.NewSlot.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid new_slot time: %v", ErrInvalidInput, err)
		}
		if req.NewSlot.Place == "" {
			return fmt.Errorf("%w: new_slot place is required for reschedule", ErrInvalidInput)
		}
	}

	return nil
}

// eligible проверяет, применимо ли действие к бронированию
// Отменить можно любое неотменённое, перенести - только активное
func eligible(b *domain.Booking, action Action) bool {
	switch action {
	case ActionCancel:
		return !b.IsCancelled()
	case ActionReschedule:
		return b.IsActive()
	default:
		return false
	}
}
