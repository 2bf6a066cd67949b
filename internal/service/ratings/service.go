package ratings

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

// RateResponse результат выставления оценки
type RateResponse struct {
	TeacherID     int64   `json:"teacherId"`
	DisplayRating float64 `json:"displayRating"`
	RatingCount   int     `json:"ratingCount"`
	// Replaced признак того, что пользователь перезаписал свою прежнюю оценку
	Replaced bool `json:"replaced"`
}

// Service сервис оценок преподавателей
// Агрегат пересчитывается на записи в той же транзакции, что и оценка:
// чтение рейтинга остаётся чистым
type Service struct {
	ratingRepo  RatingRepository
	teacherRepo TeacherRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса оценок
func NewService(
	ratingRepo RatingRepository,
	teacherRepo TeacherRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		ratingRepo:  ratingRepo,
		teacherRepo: teacherRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Rate выставляет или заменяет оценку преподавателю от пользователя
// Повторная оценка того же преподавателя перезаписывает предыдущую
func (s *Service) Rate(ctx context.Context, actor domain.Actor, teacherID int64, value float64) (*RateResponse, error) {
	s.logger.Info("Rate: user=%d, teacher=%d, value=%.1f", actor.UserID, teacherID, value)

	if teacherID <= 0 {
		return nil, fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}
	if value < domain.MinRatingValue || value > domain.MaxRatingValue {
		return nil, fmt.Errorf("%w: rating must be between %.0f and %.0f",
			ErrInvalidInput, domain.MinRatingValue, domain.MaxRatingValue)
	}

	var resp *RateResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		teacher, err := s.teacherRepo.GetByID(txCtx, teacherID)
		if err != nil {
			if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
				s.logger.Warn("Rate: teacher id=%d not found", teacherID)
				return ErrTeacherNotFound
			}
			s.logger.Error("Rate: failed to get teacher id=%d: %v", teacherID, err)
			return fmt.Errorf("%w: Rate - failed to get teacher: %v", ErrInternal, err)
		}

		replaced, err := s.ratingRepo.HasRated(txCtx, actor.UserID, teacher.ID)
		if err != nil {
			s.logger.Error("Rate: failed to check existing rating for teacher=%d: %v", teacherID, err)
			return fmt.Errorf("%w: Rate - failed to check existing rating: %v", ErrInternal, err)
		}

		// Оценка хранится нормализованной: пользовательские 1..5 делятся на 10
		rating := &domain.Rating{
			UserID:    actor.UserID,
			TeacherID: teacher.ID,
			Value:     domain.NormalizeRatingValue(value),
		}
		if _, err := s.ratingRepo.Upsert(txCtx, rating); err != nil {
			s.logger.Error("Rate: failed to upsert rating for teacher=%d: %v", teacherID, err)
			return fmt.Errorf("%w: Rate - failed to upsert rating: %v", ErrInternal, err)
		}

		aggregate, err := s.ratingRepo.Aggregate(txCtx, teacher.ID)
		if err != nil {
			s.logger.Error("Rate: failed to aggregate ratings for teacher=%d: %v", teacherID, err)
			return fmt.Errorf("%w: Rate - failed to aggregate ratings: %v", ErrInternal, err)
		}

		display := aggregate.DisplayRating()
		if err := s.teacherRepo.UpdateRatingAggregate(txCtx, teacher.ID, display, aggregate.Count); err != nil {
			s.logger.Error("Rate: failed to store aggregate for teacher=%d: %v", teacherID, err)
			return fmt.Errorf("%w: Rate - failed to store aggregate: %v", ErrInternal, err)
		}

		resp = &RateResponse{
			TeacherID:     teacher.ID,
			DisplayRating: display,
			RatingCount:   aggregate.Count,
			Replaced:      replaced,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Rate: teacher=%d rating updated to %.2f (%d votes)",
		resp.TeacherID, resp.DisplayRating, resp.RatingCount)
	return resp, nil
}
