package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

// UseCase use case создания бронирования
// Подсчёт occupancy, выбор статуса и вставка выполняются одним атомарным
// блоком в serializable-транзакции: два конкурентных запроса на последний
// свободный слот не могут оба получить confirmed
type UseCase struct {
	bookingRepo BookingRepository
	teacherRepo TeacherRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	teacherRepo TeacherRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		teacherRepo: teacherRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, teacher=%d, date=%s, time=%s, place=%s",
		req.Actor.UserID, req.TeacherID, req.Date, req.Time, req.Place)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка слота и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем преподавателя (строка блокируется FOR UPDATE)
		teacher, err := uc.teacherRepo.GetByID(txCtx, req.TeacherID)
		if err != nil {
			if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
				uc.logger.Warn("CreateBooking: teacher id=%d not found", req.TeacherID)
				return ErrTeacherNotFound
			}
			uc.logger.Error("CreateBooking: failed to get teacher id=%d: %v", req.TeacherID, err)
			return fmt.Errorf("%w: failed to get teacher: %v", ErrInternal, err)
		}

		// 2.2. Слот должен существовать в расписании, место и предмет - совпадать
		if err := validateSlot(teacher, req); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed for teacher=%d: %v", req.TeacherID, err)
			return err
		}

		slot := domain.SlotKey{
			TeacherID: teacher.ID,
			Date:      req.Date,
			Time:      req.Time,
			Place:     req.Place,
		}

		// 2.3. Согласованный снимок слота: все неотменённые бронирования, FOR UPDATE
		slotBookings, err := uc.bookingRepo.GetBySlot(txCtx, slot, domain.NonCancelledStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		// 2.4. Не больше одного неотменённого бронирования слота на пользователя
		if hasActiveForUser(slotBookings, req.Actor.UserID) {
			uc.logger.Warn("CreateBooking: user=%d already booked slot (teacher=%d, date=%s, time=%s)",
				req.Actor.UserID, req.TeacherID, req.Date, req.Time)
			return ErrAlreadyBooked
		}

		// 2.5. Решаем стартовый статус по occupancy
		occupancy := countActive(slotBookings)
		status := domain.InitialStatus(occupancy, teacher.MaxStudentsPerGroup)

		uc.logger.Info("CreateBooking: slot occupancy %d/%d, initial status=%s",
			occupancy, teacher.MaxStudentsPerGroup, status)

		// 2.6. Создаем бронирование
		booking := &domain.Booking{
			UserID:    req.Actor.UserID,
			TeacherID: teacher.ID,
			Subject:   req.Subject,
			Date:      req.Date,
			Time:      req.Time,
			Place:     req.Place,
			Status:    status,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d with status=%s", result.ID, result.Status)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		TeacherID: result.TeacherID,
		Subject:   result.Subject,
		Date:      result.Date,
		Time:      result.Time,
		Place:     result.Place,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
