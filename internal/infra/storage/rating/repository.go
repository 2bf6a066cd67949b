package rating

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/pkg/dbmetrics"
	"github.com/edubridge/EduBridge-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий оценок преподавателей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория оценок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет оценку пользователя; повторная оценка того же
// преподавателя заменяет предыдущую
func (r *Repository) Upsert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ratings").
		Columns("user_id", "teacher_id", "value").
		Values(rating.UserID, rating.TeacherID, rating.Value).
		Suffix("ON CONFLICT (user_id, teacher_id) DO UPDATE SET value = EXCLUDED.value").
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rating.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	rating.CreatedAt = createdAt.Time
	return rating, nil
}

// Aggregate считает агрегат оценок преподавателя
func (r *Repository) Aggregate(ctx context.Context, teacherID int64) (domain.RatingAggregate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(value), 0)", "COUNT(*)").
		From("ratings").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		ToSql()

	if err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("%w: Aggregate - build select query: %v", ErrBuildQuery, err)
	}

	var agg domain.RatingAggregate
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&agg.Sum, &agg.Count); err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("%w: Aggregate - scan aggregate: %v", ErrScanRow, err)
	}

	return agg, nil
}

// HasRated проверяет, оценивал ли пользователь преподавателя
func (r *Repository) HasRated(ctx context.Context, userID, teacherID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("ratings").
		Where(squirrel.Eq{"user_id": userID, "teacher_id": teacherID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasRated - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasRated - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}
