package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeLabel возвращается, когда метка времени не распознана
// ни одним из поддерживаемых форматов
var ErrInvalidTimeLabel = errors.New("types: invalid time label")

// timeLabelLayouts поддерживаемые форматы метки времени слота,
// проверяются по порядку: 12-часовой с AM/PM, 24-часовой, 24-часовой с секундами
var timeLabelLayouts = []string{"3:04 PM", "15:04", "15:04:05"}

// TimeLabel свободная строковая метка времени слота (например, "2:00 PM" или "14:30")
// Хранится как есть; разбор выполняется только там, где нужно реальное время
type TimeLabel string

// NewTimeLabel создает метку из time.Time в 24-часовом формате
func NewTimeLabel(t time.Time) TimeLabel {
	return TimeLabel(t.Format("15:04"))
}

// String возвращает метку как строку
func (t TimeLabel) String() string {
	return string(t)
}

// IsZero возвращает true для пустой метки
func (t TimeLabel) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Clock разбирает метку в часы/минуты/секунды
// Форматы пробуются по порядку; если ни один не подошел - ErrInvalidTimeLabel,
// никакого значения по умолчанию
func (t TimeLabel) Clock() (hour, minute, second int, err error) {
	label := strings.ToUpper(strings.TrimSpace(string(t)))

	for _, layout := range timeLabelLayouts {
		parsed, parseErr := time.Parse(layout, label)
		if parseErr == nil {
			return parsed.Hour(), parsed.Minute(), parsed.Second(), nil
		}
	}

	return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, string(t))
}

// Validate проверяет, что метка разбирается одним из поддерживаемых форматов
func (t TimeLabel) Validate() error {
	_, _, _, err := t.Clock()
	return err
}

// At совмещает метку с датой в указанной временной зоне
func (t TimeLabel) At(date time.Time, loc *time.Location) (time.Time, error) {
	hour, minute, second, err := t.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, loc), nil
}
