package notify_students

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

// UseCase use case массового уведомления студентов
// Все переводы статусов и продвижение очереди выполняются одной
// транзакцией; письма отправляются после её фиксации, сбой письма
// статусы не откатывает и батч не прерывает
type UseCase struct {
	bookingRepo BookingRepository
	teacherRepo TeacherRepository
	userClient  UserServiceClient
	mailClient  MailServiceClient
	promoter    WaitlistPromoter
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	teacherRepo TeacherRepository,
	userClient UserServiceClient,
	mailClient MailServiceClient,
	promoter WaitlistPromoter,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		teacherRepo: teacherRepo,
		userClient:  userClient,
		mailClient:  mailClient,
		promoter:    promoter,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case массового уведомления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("NotifyStudents: user=%d, teacher=%d, action=%s, bookings=%d",
		req.Actor.UserID, req.TeacherID, req.Action, len(req.BookingIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("NotifyStudents: validation failed: %v", err)
		return nil, err
	}

	var (
		teacher   *domain.Teacher
		processed []*domain.Booking
		promoted  []*domain.Booking
	)

	// 2. Переводы статусов и продвижение в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Повтор после конфликта сериализации начинает с чистого состояния
		processed = processed[:0]
		promoted = promoted[:0]

		var err error
		teacher, err = uc.teacherRepo.GetByID(txCtx, req.TeacherID)
		if err != nil {
			if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
				uc.logger.Warn("NotifyStudents: teacher id=%d not found", req.TeacherID)
				return ErrTeacherNotFound
			}
			uc.logger.Error("NotifyStudents: failed to get teacher id=%d: %v", req.TeacherID, err)
			return fmt.Errorf("%w: failed to get teacher: %v", ErrInternal, err)
		}

		// 2.1. Берутся только бронирования этого преподавателя
		bookings, err := uc.bookingRepo.GetByIDsAndTeacher(txCtx, req.BookingIDs, req.TeacherID)
		if err != nil {
			uc.logger.Error("NotifyStudents: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		target := domain.StatusCancelled
		if req.Action == ActionReschedule {
			target = domain.StatusModified
		}

		// 2.2. Отмена освобождает место только у активного бронирования
		freedSlots := make([]domain.SlotKey, 0)
		seenSlots := make(map[domain.SlotKey]bool)

		for _, b := range bookings {
			if !eligible(b, req.Action) {
				uc.logger.Warn("NotifyStudents: booking id=%d (status=%s) skipped for action=%s", b.ID, b.Status, req.Action)
				continue
			}

			if req.Action == ActionCancel && b.IsActive() && !seenSlots[b.Slot()] {
				seenSlots[b.Slot()] = true
				freedSlots = append(freedSlots, b.Slot())
			}

			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, target); err != nil {
				uc.logger.Error("NotifyStudents: failed to update booking id=%d: %v", b.ID, err)
				return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
			}
			processed = append(processed, b)
		}

		if len(processed) == 0 {
			uc.logger.Warn("NotifyStudents: no valid bookings among %v for teacher=%d", req.BookingIDs, req.TeacherID)
			return ErrNoValidBookings
		}

		// 2.3. Освободившиеся слоты согласуются с очередью здесь же,
		// до фиксации: конкурентная отмена не продвинет тех же ожидающих
		if len(freedSlots) > 0 {
			promoted, err = uc.promoter.PromoteSlots(txCtx, teacher, freedSlots)
			if err != nil {
				uc.logger.Error("NotifyStudents: promotion failed for teacher=%d: %v", req.TeacherID, err)
				return fmt.Errorf("%w: promotion failed: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Письма владельцам обработанных бронирований
	resp := &Response{
		Action:     req.Action,
		UpdatedIDs: make([]int64, 0, len(processed)),
		Promoted:   make([]PromotedBooking, 0, len(promoted)),
	}
	for _, b := range promoted {
		resp.Promoted = append(resp.Promoted, PromotedBooking{ID: b.ID, UserID: b.UserID})
	}

	for _, b := range processed {
		resp.UpdatedIDs = append(resp.UpdatedIDs, b.ID)

		if uc.emailOwner(ctx, teacher, b, req) {
			resp.EmailsSent++
		} else {
			resp.EmailsFailed++
		}
	}

	uc.logger.Info("NotifyStudents: teacher=%d, action=%s, updated=%d, promoted=%d, emails sent=%d failed=%d",
		req.TeacherID, req.Action, len(resp.UpdatedIDs), len(resp.Promoted), resp.EmailsSent, resp.EmailsFailed)
	return resp, nil
}

// emailOwner отправляет владельцу письмо о действии администратора
func (uc *UseCase) emailOwner(ctx context.Context, teacher *domain.Teacher, b *domain.Booking, req *Request) bool {
	user, err := uc.userClient.GetUser(ctx, b.UserID)
	if err != nil {
		uc.logger.Error("NotifyStudents: failed to get user id=%d for booking id=%d: %v", b.UserID, b.ID, err)
		return false
	}
	if user.Email == "" {
		uc.logger.Warn("NotifyStudents: user id=%d has no email, booking id=%d not emailed", b.UserID, b.ID)
		return false
	}

	subject, body := composeEmail(teacher, b, req)
	if err := uc.mailClient.Send(ctx, subject, body, user.Email); err != nil {
		uc.logger.Error("NotifyStudents: failed to email %s for booking id=%d: %v", user.Email, b.ID, err)
		return false
	}
	return true
}

// composeEmail собирает тему и тело письма для действия
func composeEmail(teacher *domain.Teacher, b *domain.Booking, req *Request) (string, string) {
	extra := ""
	if req.Message != "" {
		extra = "\n" + req.Message + "\n"
	}

	if req.Action == ActionCancel {
		body := fmt.Sprintf(
			"Dear Student,\n\n"+
				"Your booking with %s for %s on %s at %s (%s) has been cancelled.\n"+
				"%s\n"+
				"Best regards,\nEduBridge Team",
			teacher.Name, b.Subject, b.Date, b.Time, b.Place, extra)
		return "Booking Cancelled", body
	}

	body := fmt.Sprintf(
		"Dear Student,\n\n"+
			"Your booking with %s for %s has been rescheduled.\n\n"+
			"Previous schedule: %s at %s (%s)\n"+
			"New schedule: %s at %s (%s)\n"+
			"%s\n"+
			"Best regards,\nEduBridge Team",
		teacher.Name, b.Subject,
		b.Date, b.Time, b.Place,
		req.NewSlot.Date, req.NewSlot.Time, req.NewSlot.Place, extra)
	return "Booking Rescheduled", body
}
