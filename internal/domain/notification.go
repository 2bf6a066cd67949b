package domain

import "time"

// Notification уведомление пользователя в приложении
// Изменяется только флаг прочтения; удаляется только владельцем
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
