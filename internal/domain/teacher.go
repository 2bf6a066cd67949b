package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// TeacherStatus статус карточки преподавателя
type TeacherStatus string

const (
	TeacherActive    TeacherStatus = "active"
	TeacherSuspended TeacherStatus = "suspended"
)

// Schedule расписание преподавателя: дата (YYYY-MM-DD) -> метка времени -> место
// Ровно эта трёхуровневая форма является контрактом хранения и API
type Schedule map[string]map[string]string

// HasSlot проверяет наличие слота (date, time) в расписании
func (s Schedule) HasSlot(date types.DateString, timeLabel types.TimeLabel) bool {
	times, ok := s[date.String()]
	if !ok {
		return false
	}
	_, ok = times[timeLabel.String()]
	return ok
}

// PlaceFor возвращает место слота (date, time); пустая строка, если слота нет
func (s Schedule) PlaceFor(date types.DateString, timeLabel types.TimeLabel) string {
	times, ok := s[date.String()]
	if !ok {
		return ""
	}
	return times[timeLabel.String()]
}

// SlotKeys возвращает все слоты расписания преподавателя teacherID
// в детерминированном порядке (по дате, затем по метке времени)
func (s Schedule) SlotKeys(teacherID int64) []SlotKey {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	keys := make([]SlotKey, 0)
	for _, date := range dates {
		labels := make([]string, 0, len(s[date]))
		for label := range s[date] {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		for _, label := range labels {
			keys = append(keys, SlotKey{
				TeacherID: teacherID,
				Date:      types.DateString(date),
				Time:      types.TimeLabel(label),
				Place:     s[date][label],
			})
		}
	}
	return keys
}

// Value сериализует расписание в JSONB
func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// Scan читает расписание из JSONB
func (s *Schedule) Scan(src interface{}) error {
	if src == nil {
		*s = Schedule{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("domain: cannot scan %T into Schedule", src)
	}

	return json.Unmarshal(data, s)
}

// Grades список классов, с которыми работает преподаватель (JSONB)
type Grades []string

// Value сериализует список классов в JSONB
func (g Grades) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g)
}

// Scan читает список классов из JSONB
func (g *Grades) Scan(src interface{}) error {
	if src == nil {
		*g = Grades{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("domain: cannot scan %T into Grades", src)
	}

	return json.Unmarshal(data, g)
}

// Teacher represents a teacher record
// schedule и max_students_per_group - конфигурация, редактируемая только админом
type Teacher struct {
	ID                  int64
	Name                string
	Subject             string
	Governorate         string
	Grades              Grades
	PricePerSession     float64
	MaxStudentsPerGroup int
	Schedule            Schedule
	RatingAvg           float64
	RatingCount         int
	Status              TeacherStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the teacher accepts bookings
func (t *Teacher) IsActive() bool {
	return t.Status == TeacherActive
}
