package mailservice

// SendRequest запрос на отправку письма
type SendRequest struct {
	From      string `json:"from"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// ErrorResponse модель ошибки от сервиса рассылки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
