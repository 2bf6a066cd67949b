package domain

import "github.com/edubridge/EduBridge-BookingService/pkg/types"

// SlotKey identifies one bookable session instance:
// (teacher, date, time, place)
type SlotKey struct {
	TeacherID int64
	Date      types.DateString
	Time      types.TimeLabel
	Place     string
}

// InitialStatus решает стартовый статус нового бронирования по занятости слота
// occupancy - число активных (confirmed/modified) бронирований слота.
// maxPerGroup <= 0 - ошибка конфигурации: считаем слот всегда переполненным
func InitialStatus(occupancy, maxPerGroup int) BookingStatus {
	if maxPerGroup <= 0 {
		return StatusPending
	}
	if occupancy >= maxPerGroup {
		return StatusPending
	}
	return StatusConfirmed
}
