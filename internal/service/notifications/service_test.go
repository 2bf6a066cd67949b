package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	notificationRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/notification"
)

type fakeRepo struct {
	items   []*domain.Notification
	unread  int
	repoErr error

	markedFor  []int64
	deletedIDs []int64
}

func (f *fakeRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Notification, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	return f.items, nil
}

func (f *fakeRepo) UnreadCount(_ context.Context, userID int64) (int, error) {
	if f.repoErr != nil {
		return 0, f.repoErr
	}
	return f.unread, nil
}

func (f *fakeRepo) MarkAllRead(_ context.Context, userID int64) error {
	if f.repoErr != nil {
		return f.repoErr
	}
	f.markedFor = append(f.markedFor, userID)
	return nil
}

func (f *fakeRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	if f.repoErr != nil {
		return f.repoErr
	}
	for _, n := range f.items {
		if n.ID == id && n.UserID == userID {
			f.deletedIDs = append(f.deletedIDs, id)
			return nil
		}
	}
	return notificationRepo.ErrNotificationNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func actor() domain.Actor {
	return domain.Actor{UserID: 100}
}

func TestList(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Notification{
		{ID: 2, UserID: 100, Title: "Your Booking Is Confirmed", CreatedAt: time.Now()},
		{ID: 1, UserID: 100, Title: "Booking Cancelled", IsRead: true, CreatedAt: time.Now().Add(-time.Hour)},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), actor())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(2), resp.Notifications[0].ID)
	assert.False(t, resp.Notifications[0].IsRead)
}

func TestUnreadCount(t *testing.T) {
	svc := NewService(&fakeRepo{unread: 3}, nopLogger{})

	count, err := svc.UnreadCount(context.Background(), actor())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMarkAllRead(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkAllRead(context.Background(), actor()))
	assert.Equal(t, []int64{100}, repo.markedFor)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Notification{{ID: 5, UserID: 100}}}
	svc := NewService(repo, nopLogger{})

	t.Run("owner deletes own notification", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), actor(), 5))
		assert.Equal(t, []int64{5}, repo.deletedIDs)
	})

	t.Run("foreign notification looks missing", func(t *testing.T) {
		err := svc.Delete(context.Background(), domain.Actor{UserID: 999}, 5)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		err := svc.Delete(context.Background(), actor(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestRepositoryErrorsWrapped(t *testing.T) {
	svc := NewService(&fakeRepo{repoErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.List(context.Background(), actor())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.UnreadCount(context.Background(), actor())
	assert.ErrorIs(t, err, ErrInternal)

	assert.ErrorIs(t, svc.MarkAllRead(context.Background(), actor()), ErrInternal)
	assert.ErrorIs(t, svc.Delete(context.Background(), actor(), 5), ErrInternal)
}
