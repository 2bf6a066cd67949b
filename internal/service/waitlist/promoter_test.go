package waitlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings     []*domain.Booking
	updateErr    error
	updateCalled []int64
}

func (f *fakeBookingRepo) CountActiveBySlot(_ context.Context, slot domain.SlotKey) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.Slot() == slot && b.IsActive() {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) OldestPendingBySlot(_ context.Context, slot domain.SlotKey, limit int) ([]*domain.Booking, error) {
	pending := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Slot() == slot && b.IsPending() {
			pending = append(pending, b)
		}
	}
	// Бронирования в fake хранятся в порядке created_at ASC
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalled = append(f.updateCalled, id)
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	created []*domain.Notification
	err     error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	n.ID = int64(len(f.created) + 1)
	f.created = append(f.created, n)
	return n, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testTeacher(max int) *domain.Teacher {
	return &domain.Teacher{
		ID:                  1,
		Name:                "Mr. Hassan",
		Subject:             "Math",
		MaxStudentsPerGroup: max,
		Schedule: domain.Schedule{
			"2025-06-01": {"2:00 PM": "Room A"},
		},
	}
}

func slotBooking(id, userID int64, status domain.BookingStatus, created time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    userID,
		TeacherID: 1,
		Subject:   "Math",
		Date:      "2025-06-01",
		Time:      "2:00 PM",
		Place:     "Room A",
		Status:    status,
		CreatedAt: created,
	}
}

func TestPromoteOneForSlot_PromotesOldestPending(t *testing.T) {
	now := time.Now()
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(1, 10, domain.StatusConfirmed, now.Add(-3*time.Hour)),
		slotBooking(2, 20, domain.StatusPending, now.Add(-2*time.Hour)),
		slotBooking(3, 30, domain.StatusPending, now.Add(-1*time.Hour)),
	}}
	notifications := &fakeNotificationRepo{}
	promoter := NewPromoter(repo, notifications, nopLogger{})

	teacher := testTeacher(2)
	slot := repo.bookings[0].Slot()

	promoted, err := promoter.PromoteOneForSlot(context.Background(), teacher, slot)
	require.NoError(t, err)
	require.NotNil(t, promoted)

	// Продвигается ровно одно, самое старое ожидающее
	assert.Equal(t, int64(2), promoted.ID)
	assert.Equal(t, domain.StatusConfirmed, promoted.Status)
	assert.Equal(t, domain.StatusPending, repo.bookings[2].Status)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, int64(20), notifications.created[0].UserID)
	assert.Contains(t, notifications.created[0].Message, "Mr. Hassan")
	assert.Contains(t, notifications.created[0].Message, "Math")
	assert.Contains(t, notifications.created[0].Message, "2025-06-01")
	assert.Contains(t, notifications.created[0].Message, "2:00 PM")
	assert.Contains(t, notifications.created[0].Message, "Room A")
}

func TestPromoteOneForSlot_NoCapacity(t *testing.T) {
	now := time.Now()
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(1, 10, domain.StatusConfirmed, now),
		slotBooking(2, 20, domain.StatusModified, now),
		slotBooking(3, 30, domain.StatusPending, now),
	}}
	promoter := NewPromoter(repo, &fakeNotificationRepo{}, nopLogger{})

	promoted, err := promoter.PromoteOneForSlot(context.Background(), testTeacher(2), repo.bookings[0].Slot())
	require.NoError(t, err)
	assert.Nil(t, promoted)
	assert.Empty(t, repo.updateCalled)
}

func TestPromoteOneForSlot_NoPending(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(1, 10, domain.StatusConfirmed, time.Now()),
	}}
	promoter := NewPromoter(repo, &fakeNotificationRepo{}, nopLogger{})

	promoted, err := promoter.PromoteOneForSlot(context.Background(), testTeacher(2), repo.bookings[0].Slot())
	require.NoError(t, err)
	assert.Nil(t, promoted)
}

func TestPromoteForSchedule_PromotesUpToAvailable(t *testing.T) {
	now := time.Now()
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(1, 10, domain.StatusConfirmed, now.Add(-5*time.Hour)),
		slotBooking(2, 20, domain.StatusPending, now.Add(-4*time.Hour)),
		slotBooking(3, 30, domain.StatusPending, now.Add(-3*time.Hour)),
		slotBooking(4, 40, domain.StatusPending, now.Add(-2*time.Hour)),
	}}
	notifications := &fakeNotificationRepo{}
	promoter := NewPromoter(repo, notifications, nopLogger{})

	// Вместимость выросла до 3: занято 1, свободно 2
	teacher := testTeacher(3)
	promoted, err := promoter.PromoteForSchedule(context.Background(), teacher)
	require.NoError(t, err)
	require.Len(t, promoted, 2)

	assert.Equal(t, int64(2), promoted[0].ID)
	assert.Equal(t, int64(3), promoted[1].ID)
	assert.Equal(t, domain.StatusPending, repo.bookings[3].Status)
	assert.Len(t, notifications.created, 2)
}

func TestPromoteForSchedule_NotificationFailureSurfaces(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(1, 10, domain.StatusPending, time.Now()),
	}}
	notifications := &fakeNotificationRepo{err: errors.New("db down")}
	promoter := NewPromoter(repo, notifications, nopLogger{})

	_, err := promoter.PromoteForSchedule(context.Background(), testTeacher(2))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestPromoteSlots_FillsFreedSeats(t *testing.T) {
	now := time.Now()
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(1, 10, domain.StatusPending, now.Add(-2*time.Hour)),
		slotBooking(2, 20, domain.StatusPending, now.Add(-1*time.Hour)),
	}}
	promoter := NewPromoter(repo, &fakeNotificationRepo{}, nopLogger{})

	teacher := testTeacher(2)
	promoted, err := promoter.PromoteSlots(context.Background(), teacher, []domain.SlotKey{repo.bookings[0].Slot()})
	require.NoError(t, err)
	assert.Len(t, promoted, 2)
}
