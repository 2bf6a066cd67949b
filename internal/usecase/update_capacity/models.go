package update_capacity

import "github.com/edubridge/EduBridge-BookingService/internal/domain"

// Request модель запроса на смену вместимости группы
type Request struct {
	Actor       domain.Actor // Авторизационный контекст (только администратор)
	TeacherID   int64        // ID преподавателя
	MaxStudents int          // Новая вместимость группы
}

// PromotedBooking продвинутое бронирование в составе ответа
type PromotedBooking struct {
	ID     int64
	UserID int64
}

// Response модель ответа на смену вместимости
type Response struct {
	TeacherID   int64 // ID преподавателя
	MaxStudents int   // Применённая вместимость

	// Promoted бронирования, подтверждённые проходом по расписанию.
	// Пуст, если вместимость не увеличилась
	Promoted []PromotedBooking
}
