package notify_students

import (
	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// Action массовое действие над бронированиями
type Action string

const (
	// ActionCancel отменяет бронирования
	ActionCancel Action = "cancel"

	// ActionReschedule переводит бронирования в modified с новым слотом
	ActionReschedule Action = "reschedule"
)

// NewSlot описание нового слота для писем при переносе
type NewSlot struct {
	Date  types.DateString
	Time  types.TimeLabel
	Place string
}

// Request модель запроса массового уведомления студентов
type Request struct {
	Actor      domain.Actor // Авторизационный контекст (только администратор)
	TeacherID  int64        // ID преподавателя
	BookingIDs []int64      // Затрагиваемые бронирования
	Action     Action       // cancel или reschedule
	Message    string       // Дополнительное сообщение в письме (необязательное)
	NewSlot    NewSlot      // Обязателен для reschedule
}

// PromotedBooking продвинутое бронирование в составе ответа
type PromotedBooking struct {
	ID     int64
	UserID int64
}

// Response модель ответа массового уведомления
// Статусы пишутся атомарно; счётчики писем отражают доставку после фиксации
type Response struct {
	Action       Action  // Выполненное действие
	UpdatedIDs   []int64 // Бронирования со сменённым статусом
	EmailsSent   int     // Успешно отправленные письма
	EmailsFailed int     // Письма, которые отправить не удалось

	// Promoted бронирования, подтверждённые после освобождения мест.
	// Заполняется только для action=cancel
	Promoted []PromotedBooking
}
