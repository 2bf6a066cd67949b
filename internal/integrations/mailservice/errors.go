package mailservice

import "errors"

var (
	// ErrSendFailed возвращается, когда сервис рассылки отклонил письмо
	// Вызывающая сторона решает, критична ли ошибка (bulk-рассылка только считает их)
	ErrSendFailed = errors.New("mailservice client: send failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailservice client: invalid response")
)
