package domain

import "time"

// Rating оценка преподавателя пользователем
// Хранится нормализованной: пользовательская оценка 1..5 делится на 10,
// агрегат преподавателя пересчитывается на записи (чтение - чистое)
type Rating struct {
	ID        int64
	UserID    int64
	TeacherID int64
	Value     float64
	CreatedAt time.Time
}

// NormalizeRatingValue нормализует пользовательскую оценку для хранения
func NormalizeRatingValue(userValue float64) float64 {
	return userValue / 10.0
}

// RatingAggregate агрегат рейтинга преподавателя
type RatingAggregate struct {
	Sum   float64
	Count int
}

// TopRatedThreshold порог суммарного рейтинга для пометки "top rated"
const TopRatedThreshold = 5.0

// MaxDisplayRating верхняя граница отображаемого рейтинга
const MaxDisplayRating = 5.0

// DisplayRating возвращает отображаемый рейтинг: сумма, ограниченная сверху 5.0
func (a RatingAggregate) DisplayRating() float64 {
	total := a.Sum
	if total > MaxDisplayRating {
		return MaxDisplayRating
	}
	return total
}
