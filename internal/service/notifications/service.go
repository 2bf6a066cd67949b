package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	notificationRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/notification"
)

// NotificationResponse уведомление в ответах API
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListResponse список уведомлений, новые первыми
type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// Service сервис уведомлений пользователя
// Все операции работают только с уведомлениями самого актора
type Service struct {
	repo   NotificationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(repo NotificationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает уведомления пользователя, новые первыми
func (s *Service) List(ctx context.Context, actor domain.Actor) (*ListResponse, error) {
	s.logger.Info("List: fetching notifications for user=%d", actor.UserID)

	items, err := s.repo.ListByUser(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &ListResponse{
		Notifications: make([]NotificationResponse, 0, len(items)),
		Total:         len(items),
	}
	for _, n := range items {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return resp, nil
}

// UnreadCount возвращает число непрочитанных уведомлений
func (s *Service) UnreadCount(ctx context.Context, actor domain.Actor) (int, error) {
	count, err := s.repo.UnreadCount(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("UnreadCount: repository error for user=%d: %v", actor.UserID, err)
		return 0, fmt.Errorf("%w: UnreadCount - repository error: %v", ErrInternal, err)
	}
	return count, nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (s *Service) MarkAllRead(ctx context.Context, actor domain.Actor) error {
	s.logger.Info("MarkAllRead: user=%d", actor.UserID)

	if err := s.repo.MarkAllRead(ctx, actor.UserID); err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%d: %v", actor.UserID, err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Delete удаляет уведомление владельца
// Чужое уведомление неотличимо от несуществующего
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: notification id=%d, user=%d", id, actor.UserID)

	if id <= 0 {
		return fmt.Errorf("%w: notificationID must be positive", ErrInvalidInput)
	}

	if err := s.repo.DeleteOwned(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("Delete: notification id=%d not found for user=%d", id, actor.UserID)
			return ErrNotificationNotFound
		}
		s.logger.Error("Delete: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}
