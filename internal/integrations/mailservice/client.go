package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса почтовой рассылки
// Доставка писем - внешний коллаборатор; отправка может завершиться ошибкой,
// и на массовых путях ошибки считаются, а не прерывают пакет
type Client struct {
	baseURL    string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса рассылки
func NewClient(baseURL, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		from:    from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо получателю
func (c *Client) Send(ctx context.Context, subject, body, recipient string) error {
	url := fmt.Sprintf("%s/internal/mail/send", c.baseURL)

	payload, err := json.Marshal(SendRequest{
		From:      c.from,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}
}
