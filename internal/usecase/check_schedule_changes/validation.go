package check_schedule_changes

import (
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// new_slot обязан нести дату, время и место до любой работы с бронированиями
func validateRequest(req *Request) error {
	if !req.Actor.IsAdmin {
		return ErrForbidden
	}

	if req.TeacherID <= 0 {
		return fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	if req.NewSlot.Date.IsZero() {
		return fmt.Errorf("%w: new_slot date is required", ErrInvalidInput)
	}
	if err := req.NewSlot.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid new_slot date: %v", ErrInvalidInput, err)
	}

	if req.NewSlot.Time.IsZero() {
		return fmt.Errorf("%w: new_slot time is required", ErrInvalidInput)
	}
	if err := req.NewSlot.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid new_slot time: %v", ErrInvalidInput, err)
	}

	if req.NewSlot.Place == "" {
		return fmt.Errorf("%w: new_slot place is required", ErrInvalidInput)
	}

	return nil
}

// slotAffected проверяет, был ли слот бронирования в старом расписании
// и исчез либо сменил место в новом
func slotAffected(oldSchedule, newSchedule domain.Schedule, b *domain.Booking) bool {
	if !oldSchedule.HasSlot(b.Date, b.Time) {
		return false
	}

	oldPlace := oldSchedule.PlaceFor(b.Date, b.Time)
	if !newSchedule.HasSlot(b.Date, b.Time) {
		return true
	}
	return newSchedule.PlaceFor(b.Date, b.Time) != oldPlace
}
