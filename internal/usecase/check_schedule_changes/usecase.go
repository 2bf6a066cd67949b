package check_schedule_changes

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

// UseCase use case проверки изменений расписания
// Переводы статусов выполняются одной транзакцией; письма отправляются
// после её фиксации, и сбой письма статус не откатывает
type UseCase struct {
	bookingRepo BookingRepository
	teacherRepo TeacherRepository
	userClient  UserServiceClient
	mailClient  MailServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	teacherRepo TeacherRepository,
	userClient UserServiceClient,
	mailClient MailServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		teacherRepo: teacherRepo,
		userClient:  userClient,
		mailClient:  mailClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case проверки изменений расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckScheduleChanges: user=%d, teacher=%d", req.Actor.UserID, req.TeacherID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckScheduleChanges: validation failed: %v", err)
		return nil, err
	}

	var (
		teacher  *domain.Teacher
		affected []*domain.Booking
	)

	// 2. Диф расписаний и переводы статусов в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Повтор после конфликта сериализации начинает с чистого состояния
		affected = affected[:0]

		var err error
		teacher, err = uc.teacherRepo.GetByID(txCtx, req.TeacherID)
		if err != nil {
			if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
				uc.logger.Warn("CheckScheduleChanges: teacher id=%d not found", req.TeacherID)
				return ErrTeacherNotFound
			}
			uc.logger.Error("CheckScheduleChanges: failed to get teacher id=%d: %v", req.TeacherID, err)
			return fmt.Errorf("%w: failed to get teacher: %v", ErrInternal, err)
		}

		// 2.1. Все активные бронирования преподавателя
		bookings, err := uc.bookingRepo.GetActiveByTeacher(txCtx, req.TeacherID)
		if err != nil {
			uc.logger.Error("CheckScheduleChanges: failed to get bookings for teacher=%d: %v", req.TeacherID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.2. Затронуто бронирование, чей слот был в старом расписании
		// и исчез либо переехал в новом
		for _, b := range bookings {
			if !slotAffected(req.OldSchedule, req.NewSchedule, b) {
				continue
			}

			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusModified); err != nil {
				uc.logger.Error("CheckScheduleChanges: failed to mark booking id=%d modified: %v", b.ID, err)
				return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
			}
			affected = append(affected, b)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Письма владельцам затронутых бронирований
	resp := &Response{Affected: make([]AffectedBooking, 0, len(affected))}
	for _, b := range affected {
		resp.Affected = append(resp.Affected, AffectedBooking{ID: b.ID, UserID: b.UserID})

		if uc.emailOwner(ctx, teacher, b, req.NewSlot) {
			resp.EmailsSent++
		} else {
			resp.EmailsFailed++
		}
	}

	uc.logger.Info("CheckScheduleChanges: teacher=%d, affected=%d, emails sent=%d failed=%d",
		req.TeacherID, len(resp.Affected), resp.EmailsSent, resp.EmailsFailed)
	return resp, nil
}

// emailOwner отправляет владельцу письмо со старыми и новыми деталями слота
func (uc *UseCase) emailOwner(ctx context.Context, teacher *domain.Teacher, b *domain.Booking, newSlot NewSlot) bool {
	user, err := uc.userClient.GetUser(ctx, b.UserID)
	if err != nil {
		uc.logger.Error("CheckScheduleChanges: failed to get user id=%d for booking id=%d: %v", b.UserID, b.ID, err)
		return false
	}
	if user.Email == "" {
		uc.logger.Warn("CheckScheduleChanges: user id=%d has no email, booking id=%d skipped", b.UserID, b.ID)
		return false
	}

	subject := "Schedule Change Notice"
	body := fmt.Sprintf(
		"Dear Student,\n\n"+
			"The schedule for your booking with %s (%s) has changed.\n\n"+
			"Previous schedule: %s at %s (%s)\n"+
			"New schedule: %s at %s (%s)\n\n"+
			"Your booking has been marked as modified. Please review the new details.\n\n"+
			"Best regards,\nEduBridge Team",
		teacher.Name, b.Subject,
		b.Date, b.Time, b.Place,
		newSlot.Date, newSlot.Time, newSlot.Place,
	)

	if err := uc.mailClient.Send(ctx, subject, body, user.Email); err != nil {
		uc.logger.Error("CheckScheduleChanges: failed to email %s for booking id=%d: %v", user.Email, b.ID, err)
		return false
	}
	return true
}
