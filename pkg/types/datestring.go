package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateString возвращается при дате не в формате YYYY-MM-DD
var ErrInvalidDateString = errors.New("types: invalid date string")

// DateLayout формат даты во внешних контрактах (ключи расписания, API)
const DateLayout = "2006-01-02"

// DateString дата в формате YYYY-MM-DD
// Используется как внешний ключ расписания преподавателя
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateLayout))
}

// String возвращает дату как строку
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true для пустой даты
func (d DateString) IsZero() bool {
	return string(d) == ""
}

// Parse разбирает дату в time.Time в указанной зоне
func (d DateString) Parse(loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return parsed, nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	_, err := d.Parse(time.UTC)
	return err
}
