package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	bookingRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/booking"
	"github.com/edubridge/EduBridge-BookingService/internal/service/bookings/models"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

// Service сервис для чтения бронирований и действий владельца,
// не меняющих статус
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Видит только владелец или администратор
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.getOwned(ctx, actor, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя,
// новые первыми. Чужую историю видит только администратор
func (s *Service) GetUserBookings(ctx context.Context, actor domain.Actor, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, requested by user=%d", userID, actor.UserID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if !actor.IsAdmin && actor.UserID != userID {
		s.logger.Warn("GetUserBookings: user=%d denied access to bookings of user=%d", actor.UserID, userID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// GetSlotBookings получает активные бронирования слота
// Инструмент администратора для инспекции занятости
func (s *Service) GetSlotBookings(ctx context.Context, actor domain.Actor, teacherID int64, date types.DateString, timeLabel types.TimeLabel, place string) (*models.BookingListResponse, error) {
	s.logger.Info("GetSlotBookings: teacher=%d, date=%s, time=%s, requested by user=%d",
		teacherID, date, timeLabel, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("GetSlotBookings: user=%d is not an admin", actor.UserID)
		return nil, ErrAccessDenied
	}
	if teacherID <= 0 {
		return nil, fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}
	if err := timeLabel.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	if place == "" {
		return nil, fmt.Errorf("%w: place is required", ErrInvalidInput)
	}

	slot := domain.SlotKey{TeacherID: teacherID, Date: date, Time: timeLabel, Place: place}
	bookings, err := s.bookingRepo.GetBySlot(ctx, slot, domain.ActiveStatuses)
	if err != nil {
		s.logger.Error("GetSlotBookings: repository error for teacher=%d: %v", teacherID, err)
		return nil, fmt.Errorf("%w: GetSlotBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// MarkRated помечает бронирование оценённым
// Статус и occupancy не меняются
func (s *Service) MarkRated(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("MarkRated: booking id=%d, user=%d", id, actor.UserID)

	if _, err := s.getOwned(ctx, actor, id, "MarkRated"); err != nil {
		return err
	}

	if err := s.bookingRepo.MarkRated(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("MarkRated: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRated - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ClosePopup фиксирует момент закрытия рейтингового попапа владельцем
func (s *Service) ClosePopup(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("ClosePopup: booking id=%d, user=%d", id, actor.UserID)

	if _, err := s.getOwned(ctx, actor, id, "ClosePopup"); err != nil {
		return err
	}

	if err := s.bookingRepo.ClosePopup(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("ClosePopup: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: ClosePopup - repository error: %v", ErrInternal, err)
	}

	return nil
}

// getOwned получает бронирование и проверяет право актора им распоряжаться
func (s *Service) getOwned(ctx context.Context, actor domain.Actor, id int64, op string) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !actor.CanManageBooking(booking) {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
