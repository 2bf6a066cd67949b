package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	bookingRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/booking"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

// UseCase use case отмены бронирования
// Отмена и продвижение очереди выполняются одним атомарным блоком:
// две конкурентные отмены одного слота не могут продвинуть два
// ожидающих бронирования на одно освободившееся место
type UseCase struct {
	bookingRepo      BookingRepository
	teacherRepo      TeacherRepository
	notificationRepo NotificationRepository
	promoter         WaitlistPromoter
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger

	location    *time.Location
	noticeHours int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	teacherRepo TeacherRepository,
	notificationRepo NotificationRepository,
	promoter WaitlistPromoter,
	txManager TransactionManager,
	logger Logger,
	location *time.Location,
	noticeHours int,
) *UseCase {
	if noticeHours <= 0 {
		noticeHours = domain.DefaultCancellationNoticeHours
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		teacherRepo:      teacherRepo,
		notificationRepo: notificationRepo,
		promoter:         promoter,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
		location:         location,
		noticeHours:      noticeHours,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: user=%d, booking=%d", req.Actor.UserID, req.BookingID)

	// 1. Валидация входных данных
	if req.Actor.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	var resp *Response

	// 2. Отмена и продвижение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование (строка блокируется FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отменять может только владелец или администратор
		if !req.Actor.CanManageBooking(booking) {
			uc.logger.Warn("CancelBooking: user=%d is not allowed to cancel booking id=%d", req.Actor.UserID, booking.ID)
			return ErrForbidden
		}

		// 2.3. Из cancelled переходов нет
		if booking.IsCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", booking.ID)
			return ErrAlreadyCancelled
		}

		// 2.4. Получаем преподавателя (блокировка сериализует работу со слотом)
		teacher, err := uc.teacherRepo.GetByID(txCtx, booking.TeacherID)
		if err != nil {
			if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
				uc.logger.Warn("CancelBooking: teacher id=%d not found", booking.TeacherID)
				return ErrTeacherNotFound
			}
			uc.logger.Error("CancelBooking: failed to get teacher id=%d: %v", booking.TeacherID, err)
			return fmt.Errorf("%w: failed to get teacher: %v", ErrInternal, err)
		}

		// 2.5. Активное бронирование отменяется только заранее;
		// ожидающее можно отозвать в любой момент, оно не держит место
		wasActive := booking.IsActive()
		if wasActive {
			if err := uc.checkNotice(booking); err != nil {
				return err
			}
		}

		// 2.6. Помечаем отменённым
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CancelBooking: failed to update booking id=%d status: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		// 2.7. Уведомляем владельца
		if err := uc.notifyCancelled(txCtx, booking, teacher); err != nil {
			return err
		}

		resp = &Response{
			ID:     booking.ID,
			Status: string(domain.StatusCancelled),
			Date:   booking.Date,
			Time:   booking.Time,
		}

		// 2.8. Освободилось место - продвигаем самого старого ожидающего
		if wasActive {
			promoted, err := uc.promoter.PromoteOneForSlot(txCtx, teacher, booking.Slot())
			if err != nil {
				uc.logger.Error("CancelBooking: promotion failed for booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: promotion failed: %v", ErrInternal, err)
			}
			if promoted != nil {
				id := promoted.ID
				resp.PromotedBookingID = &id
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d", resp.ID)
	return resp, nil
}

// checkNotice проверяет, что до начала занятия осталось не меньше
// минимального срока отмены. Начало вычисляется из даты и метки времени
// бронирования в настроенной временной зоне
func (uc *UseCase) checkNotice(booking *domain.Booking) error {
	date, err := booking.Date.Parse(uc.location)
	if err != nil {
		uc.logger.Warn("CancelBooking: booking id=%d has invalid date %q: %v", booking.ID, booking.Date, err)
		return fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}

	slotStart, err := booking.Time.At(date, uc.location)
	if err != nil {
		uc.logger.Warn("CancelBooking: booking id=%d has invalid time %q: %v", booking.ID, booking.Time, err)
		return fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}

	now := uc.timeProvider.Now().In(uc.location)
	notice := time.Duration(uc.noticeHours) * time.Hour

	if slotStart.Sub(now) < notice {
		uc.logger.Warn("CancelBooking: booking id=%d starts at %s, less than %dh away",
			booking.ID, slotStart.Format(time.RFC3339), uc.noticeHours)
		return fmt.Errorf("%w: booking must be cancelled at least %d hours before the slot", ErrTooLateToCancel, uc.noticeHours)
	}

	return nil
}

// notifyCancelled создаёт уведомление владельцу об отмене
func (uc *UseCase) notifyCancelled(ctx context.Context, booking *domain.Booking, teacher *domain.Teacher) error {
	n := &domain.Notification{
		UserID: booking.UserID,
		Title:  "Booking Cancelled",
		Message: fmt.Sprintf("Your booking with %s for %s on %s at %s has been cancelled.",
			teacher.Name, booking.Subject, booking.Date, booking.Time),
	}

	if _, err := uc.notificationRepo.Create(ctx, n); err != nil {
		uc.logger.Error("CancelBooking: failed to create notification for user=%d: %v", booking.UserID, err)
		return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
	}

	return nil
}
