package domain

// Actor явный контекст авторизации, передаваемый в операции ядра
// Разрешается middleware из заголовков запроса; ядро никогда не читает
// окружение запроса само
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// CanManageBooking проверяет право изменять бронирование:
// владелец или администратор
func (a Actor) CanManageBooking(b *Booking) bool {
	return a.IsAdmin || a.UserID == b.UserID
}
