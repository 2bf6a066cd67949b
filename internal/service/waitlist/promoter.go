package waitlist

import (
	"context"
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

// Promoter продвигает ожидающие бронирования в подтверждённые,
// когда у слота освобождается место (отмена или увеличение вместимости).
// Все методы выполняются в транзакции вызывающего: выбор самого старого
// pending и смена его статуса должны быть одним атомарным блоком
type Promoter struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	logger           Logger
}

// NewPromoter создает новый экземпляр промоутера очереди ожидания
func NewPromoter(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	logger Logger,
) *Promoter {
	return &Promoter{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// PromoteOneForSlot продвигает самое старое ожидающее бронирование слота,
// если occupancy ниже вместимости. Одна отмена освобождает одно место,
// поэтому продвигается не больше одного бронирования
func (p *Promoter) PromoteOneForSlot(ctx context.Context, teacher *domain.Teacher, slot domain.SlotKey) (*domain.Booking, error) {
	promoted, err := p.promoteUpTo(ctx, teacher, slot, 1)
	if err != nil {
		return nil, err
	}
	if len(promoted) == 0 {
		return nil, nil
	}
	return promoted[0], nil
}

// PromoteForSchedule выполняет полный проход по расписанию преподавателя
// после увеличения вместимости: для каждого слота продвигает до
// (max - occupancy) самых старых ожидающих бронирований
func (p *Promoter) PromoteForSchedule(ctx context.Context, teacher *domain.Teacher) ([]*domain.Booking, error) {
	promoted := make([]*domain.Booking, 0)

	for _, slot := range teacher.Schedule.SlotKeys(teacher.ID) {
		slotPromoted, err := p.promoteUpTo(ctx, teacher, slot, teacher.MaxStudentsPerGroup)
		if err != nil {
			return nil, err
		}
		promoted = append(promoted, slotPromoted...)
	}

	p.logger.Info("PromoteForSchedule: teacher=%d, promoted=%d bookings", teacher.ID, len(promoted))
	return promoted, nil
}

// PromoteSlots продвигает ожидающих для каждого из переданных слотов
// до заполнения вместимости. Используется массовой отменой, которая может
// освободить несколько мест в одном слоте
func (p *Promoter) PromoteSlots(ctx context.Context, teacher *domain.Teacher, slots []domain.SlotKey) ([]*domain.Booking, error) {
	promoted := make([]*domain.Booking, 0)

	for _, slot := range slots {
		slotPromoted, err := p.promoteUpTo(ctx, teacher, slot, teacher.MaxStudentsPerGroup)
		if err != nil {
			return nil, err
		}
		promoted = append(promoted, slotPromoted...)
	}

	return promoted, nil
}

// promoteUpTo продвигает до limit ожидающих бронирований слота,
// но не больше, чем позволяет свободная вместимость
func (p *Promoter) promoteUpTo(ctx context.Context, teacher *domain.Teacher, slot domain.SlotKey, limit int) ([]*domain.Booking, error) {
	occupancy, err := p.bookingRepo.CountActiveBySlot(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("%w: count occupancy: %v", ErrInternal, err)
	}

	available := teacher.MaxStudentsPerGroup - occupancy
	if available <= 0 {
		return nil, nil
	}
	if available < limit {
		limit = available
	}

	pending, err := p.bookingRepo.OldestPendingBySlot(ctx, slot, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: select pending bookings: %v", ErrInternal, err)
	}

	promoted := make([]*domain.Booking, 0, len(pending))
	for _, b := range pending {
		if err := p.bookingRepo.UpdateStatus(ctx, b.ID, domain.StatusConfirmed); err != nil {
			return nil, fmt.Errorf("%w: confirm booking id=%d: %v", ErrInternal, b.ID, err)
		}
		b.Status = domain.StatusConfirmed

		if err := p.notifyPromoted(ctx, teacher, b); err != nil {
			return nil, err
		}

		p.logger.Info("Promoter: booking id=%d promoted to confirmed (teacher=%d, date=%s, time=%s, place=%s)",
			b.ID, teacher.ID, slot.Date, slot.Time, slot.Place)
		promoted = append(promoted, b)
	}

	return promoted, nil
}

func (p *Promoter) notifyPromoted(ctx context.Context, teacher *domain.Teacher, b *domain.Booking) error {
	message := fmt.Sprintf(
		"Your booking with %s for %s on %s at %s (%s) has been confirmed.",
		teacher.Name, b.Subject, b.Date, b.Time, b.Place,
	)

	_, err := p.notificationRepo.Create(ctx, &domain.Notification{
		UserID:  b.UserID,
		Title:   "Your Booking Is Confirmed",
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("%w: create promotion notification for booking id=%d: %v", ErrInternal, b.ID, err)
	}

	return nil
}
