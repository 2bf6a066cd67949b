package cancel_booking

import (
	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// Request модель запроса на отмену бронирования
type Request struct {
	Actor     domain.Actor // Авторизационный контекст (владелец или администратор)
	BookingID int64        // ID отменяемого бронирования
}

// Response модель ответа на отмену бронирования
type Response struct {
	ID     int64            // ID отменённого бронирования
	Status string           // Всегда cancelled
	Date   types.DateString // Дата слота
	Time   types.TimeLabel  // Метка времени слота

	// PromotedBookingID заполнен, если освободившееся место занял
	// самый старый ожидающий этого слота
	PromotedBookingID *int64
}
