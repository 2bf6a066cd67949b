package check_schedule_changes

import (
	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// NewSlot описание нового слота для писем об изменении расписания
type NewSlot struct {
	Date  types.DateString // Новая дата
	Time  types.TimeLabel  // Новая метка времени
	Place string           // Новое место
}

// Request модель запроса на проверку изменений расписания
// Операция сверяет старое и новое расписание, но сохранённое расписание
// преподавателя не переписывает
type Request struct {
	Actor       domain.Actor    // Авторизационный контекст (только администратор)
	TeacherID   int64           // ID преподавателя
	OldSchedule domain.Schedule // Расписание до правки администратора
	NewSchedule domain.Schedule // Расписание после правки
	NewSlot     NewSlot         // Детали нового слота для писем
}

// AffectedBooking затронутое бронирование в составе ответа
type AffectedBooking struct {
	ID     int64
	UserID int64
}

// Response модель ответа с затронутыми бронированиями
// Пустой список затронутых - успех, а не ошибка
type Response struct {
	Affected     []AffectedBooking // Бронирования, переведённые в modified
	EmailsSent   int               // Успешно отправленные письма
	EmailsFailed int               // Письма, которые отправить не удалось
}
