package waitlist

import "errors"

var (
	// ErrInternal возвращается при ошибках продвижения очереди
	// Продвижение никогда не теряется молча: любая ошибка БД всплывает
	ErrInternal = errors.New("waitlist: internal error")
)
