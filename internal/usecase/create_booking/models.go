package create_booking

import (
	"time"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor     domain.Actor     // Авторизационный контекст (владелец будущего бронирования)
	TeacherID int64            // ID преподавателя
	Subject   string           // Предмет (должен совпадать с предметом преподавателя)
	Date      types.DateString // Дата слота (YYYY-MM-DD)
	Time      types.TimeLabel  // Метка времени слота (например, "2:00 PM")
	Place     string           // Место проведения
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	UserID    int64            // ID владельца
	TeacherID int64            // ID преподавателя
	Subject   string           // Предмет
	Date      types.DateString // Дата слота
	Time      types.TimeLabel  // Метка времени слота
	Place     string           // Место
	Status    string           // confirmed или pending - решается занятостью слота

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
