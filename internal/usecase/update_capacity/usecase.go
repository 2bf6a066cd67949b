package update_capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

// UseCase use case смены вместимости группы преподавателя
// Смена вместимости и продвижение очереди выполняются одним атомарным
// блоком: конкурентное бронирование не может увидеть новую вместимость
// раньше, чем очередь будет согласована с ней
type UseCase struct {
	teacherRepo TeacherRepository
	promoter    WaitlistPromoter
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	teacherRepo TeacherRepository,
	promoter WaitlistPromoter,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		teacherRepo: teacherRepo,
		promoter:    promoter,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case смены вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateCapacity: user=%d, teacher=%d, max_students=%d",
		req.Actor.UserID, req.TeacherID, req.MaxStudents)

	// 1. Валидация входных данных
	if !req.Actor.IsAdmin {
		uc.logger.Warn("UpdateCapacity: user=%d is not an admin", req.Actor.UserID)
		return nil, ErrForbidden
	}
	if req.TeacherID <= 0 {
		return nil, fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}
	if req.MaxStudents < domain.MinStudentsPerGroup || req.MaxStudents > domain.MaxStudentsPerGroup {
		return nil, fmt.Errorf("%w: max_students must be between %d and %d",
			ErrInvalidInput, domain.MinStudentsPerGroup, domain.MaxStudentsPerGroup)
	}

	var resp *Response

	// 2. Смена вместимости и продвижение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем преподавателя (строка блокируется FOR UPDATE)
		teacher, err := uc.teacherRepo.GetByID(txCtx, req.TeacherID)
		if err != nil {
			if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
				uc.logger.Warn("UpdateCapacity: teacher id=%d not found", req.TeacherID)
				return ErrTeacherNotFound
			}
			uc.logger.Error("UpdateCapacity: failed to get teacher id=%d: %v", req.TeacherID, err)
			return fmt.Errorf("%w: failed to get teacher: %v", ErrInternal, err)
		}

		oldMax := teacher.MaxStudentsPerGroup

		// 2.2. Сохраняем новую вместимость
		if err := uc.teacherRepo.UpdateMaxStudents(txCtx, teacher.ID, req.MaxStudents); err != nil {
			uc.logger.Error("UpdateCapacity: failed to update teacher id=%d: %v", teacher.ID, err)
			return fmt.Errorf("%w: failed to update max_students: %v", ErrInternal, err)
		}
		teacher.MaxStudentsPerGroup = req.MaxStudents

		resp = &Response{
			TeacherID:   teacher.ID,
			MaxStudents: req.MaxStudents,
			Promoted:    []PromotedBooking{},
		}

		// 2.3. Уменьшение или сохранение вместимости мест не освобождает,
		// уже подтверждённые бронирования не трогаем
		if req.MaxStudents <= oldMax {
			uc.logger.Info("UpdateCapacity: teacher=%d capacity %d -> %d, no promotion needed",
				teacher.ID, oldMax, req.MaxStudents)
			return nil
		}

		// 2.4. Вместимость выросла - полный проход по расписанию
		promoted, err := uc.promoter.PromoteForSchedule(txCtx, teacher)
		if err != nil {
			uc.logger.Error("UpdateCapacity: promotion failed for teacher=%d: %v", teacher.ID, err)
			return fmt.Errorf("%w: promotion failed: %v", ErrInternal, err)
		}

		for _, b := range promoted {
			resp.Promoted = append(resp.Promoted, PromotedBooking{ID: b.ID, UserID: b.UserID})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateCapacity: teacher=%d capacity set to %d, promoted %d bookings",
		resp.TeacherID, resp.MaxStudents, len(resp.Promoted))
	return resp, nil
}
