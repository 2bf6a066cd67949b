package teacher

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/pkg/dbmetrics"
	"github.com/edubridge/EduBridge-BookingService/pkg/psqlbuilder"
)

var teacherColumns = []string{
	"id",
	"name",
	"subject",
	"governorate",
	"grades",
	"price_per_session",
	"max_students_per_group",
	"schedule",
	"rating_avg",
	"rating_count",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий карточек преподавателей
// Ядро читает schedule и max_students_per_group как внешнюю конфигурацию;
// пишут сюда только админская смена вместимости и пересчёт рейтинга
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория преподавателей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает преподавателя по ID
// Внутри транзакции строка блокируется FOR UPDATE: подсчёт occupancy по
// расписанию преподавателя должен выполняться против стабильной конфигурации
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Teacher
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.Subject,
		&t.Governorate,
		&t.Grades,
		&t.PricePerSession,
		&t.MaxStudentsPerGroup,
		&t.Schedule,
		&t.RatingAvg,
		&t.RatingCount,
		&t.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan teacher: %v", ErrScanRow, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// UpdateMaxStudents обновляет вместимость группы преподавателя
func (r *Repository) UpdateMaxStudents(ctx context.Context, id int64, maxStudents int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("teachers").
		Set("max_students_per_group", maxStudents).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateMaxStudents - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateMaxStudents - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateMaxStudents - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTeacherNotFound
	}

	return nil
}

// UpdateRatingAggregate сохраняет пересчитанный агрегат рейтинга
// Вызывается только из записи оценки (recompute-on-write), чтение агрегата чистое
func (r *Repository) UpdateRatingAggregate(ctx context.Context, id int64, ratingAvg float64, ratingCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("teachers").
		Set("rating_avg", ratingAvg).
		Set("rating_count", ratingCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRatingAggregate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRatingAggregate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRatingAggregate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTeacherNotFound
	}

	return nil
}
