package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	bookingRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	byUser   []*domain.Booking
	bySlot   []*domain.Booking
	repoErr  error

	rated  []int64
	closed []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetBySlot(_ context.Context, slot domain.SlotKey, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	return f.bySlot, nil
}

func (f *fakeBookingRepo) MarkRated(_ context.Context, id int64) error {
	f.rated = append(f.rated, id)
	return nil
}

func (f *fakeBookingRepo) ClosePopup(_ context.Context, id int64) error {
	f.closed = append(f.closed, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    userID,
		TeacherID: 7,
		Subject:   "Math",
		Date:      "2025-06-01",
		Time:      "2:00 PM",
		Place:     "Room A",
		Status:    domain.StatusConfirmed,
		CreatedAt: time.Now(),
	}
}

func owner() domain.Actor {
	return domain.Actor{UserID: 100}
}

func admin() domain.Actor {
	return domain.Actor{UserID: 1, IsAdmin: true}
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: testBooking(42, 100)}}
	svc := NewService(repo, nopLogger{})

	t.Run("owner sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), owner(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "2:00 PM", resp.Time)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("admin sees foreign booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), admin(), 42)
		require.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), domain.Actor{UserID: 999}, 42)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), owner(), 77)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), owner(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{byUser: []*domain.Booking{testBooking(2, 100), testBooking(1, 100)}}
	svc := NewService(repo, nopLogger{})

	t.Run("owner lists own history", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), owner(), 100)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("foreign history denied", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), owner(), 200)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin lists any history", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), admin(), 100)
		require.NoError(t, err)
	})
}

func TestGetSlotBookings(t *testing.T) {
	repo := &fakeBookingRepo{bySlot: []*domain.Booking{testBooking(1, 100)}}
	svc := NewService(repo, nopLogger{})

	t.Run("admin inspects slot", func(t *testing.T) {
		resp, err := svc.GetSlotBookings(context.Background(), admin(), 7, "2025-06-01", "2:00 PM", "Room A")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		_, err := svc.GetSlotBookings(context.Background(), owner(), 7, "2025-06-01", "2:00 PM", "Room A")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid slot parameters", func(t *testing.T) {
		_, err := svc.GetSlotBookings(context.Background(), admin(), 7, "bad-date", "2:00 PM", "Room A")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.GetSlotBookings(context.Background(), admin(), 7, "2025-06-01", "whenever", "Room A")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.GetSlotBookings(context.Background(), admin(), 7, "2025-06-01", "2:00 PM", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestMarkRatedAndClosePopup(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: testBooking(42, 100)}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkRated(context.Background(), owner(), 42))
	assert.Equal(t, []int64{42}, repo.rated)

	require.NoError(t, svc.ClosePopup(context.Background(), owner(), 42))
	assert.Equal(t, []int64{42}, repo.closed)

	t.Run("stranger denied", func(t *testing.T) {
		err := svc.MarkRated(context.Background(), domain.Actor{UserID: 999}, 42)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestRepositoryErrorsWrapped(t *testing.T) {
	repo := &fakeBookingRepo{repoErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), owner(), 42)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetUserBookings(context.Background(), owner(), 100)
	assert.ErrorIs(t, err, ErrInternal)
}
