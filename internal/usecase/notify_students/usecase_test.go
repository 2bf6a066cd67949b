package notify_students

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	"github.com/edubridge/EduBridge-BookingService/internal/integrations/userservice"
	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	updated  map[int64]domain.BookingStatus
}

func (f *fakeBookingRepo) GetByIDsAndTeacher(_ context.Context, ids []int64, teacherID int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.TeacherID != teacherID {
			continue
		}
		for _, id := range ids {
			if b.ID == id {
				result = append(result, b)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updated == nil {
		f.updated = make(map[int64]domain.BookingStatus)
	}
	f.updated[id] = status
	return nil
}

type fakeTeacherRepo struct {
	teacher *domain.Teacher
}

func (f *fakeTeacherRepo) GetByID(_ context.Context, id int64) (*domain.Teacher, error) {
	return f.teacher, nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return u, nil
}

type fakeMailClient struct {
	sent     []string
	subjects []string
	bodies   []string
	failFor  map[string]bool
}

func (f *fakeMailClient) Send(_ context.Context, subject, body, recipient string) error {
	if f.failFor[recipient] {
		return errors.New("smtp failure")
	}
	f.sent = append(f.sent, recipient)
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
	return nil
}

type fakePromoter struct {
	promoted  []*domain.Booking
	err       error
	calls     int
	seenSlots []domain.SlotKey
}

func (f *fakePromoter) PromoteSlots(_ context.Context, _ *domain.Teacher, slots []domain.SlotKey) ([]*domain.Booking, error) {
	f.calls++
	f.seenSlots = slots
	if f.err != nil {
		return nil, f.err
	}
	return f.promoted, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// retryingTxManager имитирует конфликт сериализации на фиксации:
// первая попытка отбрасывается, вторая проходит
type retryingTxManager struct{}

func (retryingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testTeacher() *domain.Teacher {
	return &domain.Teacher{ID: 7, Name: "Mr. Hassan", Subject: "Math", MaxStudentsPerGroup: 2}
}

func booking(id, userID int64, status domain.BookingStatus, timeLabel string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    userID,
		TeacherID: 7,
		Subject:   "Math",
		Date:      "2025-06-01",
		Time:      types.TimeLabel(timeLabel),
		Place:     "Room A",
		Status:    status,
	}
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	mail     *fakeMailClient
	promoter *fakePromoter
}

func newFixture(bookings []*domain.Booking, users map[int64]*userservice.User) *fixture {
	repo := &fakeBookingRepo{bookings: bookings}
	mail := &fakeMailClient{}
	promoter := &fakePromoter{}
	uc := NewUseCase(
		repo,
		&fakeTeacherRepo{teacher: testTeacher()},
		&fakeUserClient{users: users},
		mail,
		promoter,
		fakeTxManager{},
		nopLogger{},
	)
	return &fixture{uc: uc, bookings: repo, mail: mail, promoter: promoter}
}

func cancelRequest(ids ...int64) *Request {
	return &Request{
		Actor:      domain.Actor{UserID: 1, IsAdmin: true},
		TeacherID:  7,
		BookingIDs: ids,
		Action:     ActionCancel,
	}
}

func rescheduleRequest(ids ...int64) *Request {
	req := cancelRequest(ids...)
	req.Action = ActionReschedule
	req.NewSlot = NewSlot{Date: "2025-06-08", Time: "3:00 PM", Place: "Room C"}
	return req
}

func TestExecute_BulkCancel(t *testing.T) {
	f := newFixture(
		[]*domain.Booking{
			booking(1, 100, domain.StatusConfirmed, "2:00 PM"),
			booking(2, 200, domain.StatusModified, "2:00 PM"),
		},
		map[int64]*userservice.User{
			100: {ID: 100, Email: "first@example.com"},
			200: {ID: 200, Email: "second@example.com"},
		},
	)

	resp, err := f.uc.Execute(context.Background(), cancelRequest(1, 2))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{1, 2}, resp.UpdatedIDs)
	assert.Equal(t, domain.StatusCancelled, f.bookings.updated[1])
	assert.Equal(t, domain.StatusCancelled, f.bookings.updated[2])
	assert.Equal(t, 2, resp.EmailsSent)
	assert.Zero(t, resp.EmailsFailed)
	require.Len(t, f.mail.subjects, 2)
	assert.Equal(t, "Booking Cancelled", f.mail.subjects[0])
}

func TestExecute_BulkCancelPromotesFreedSlots(t *testing.T) {
	// Два отменённых активных бронирования одного слота дают
	// один вызов промоутера с одним слотом
	f := newFixture(
		[]*domain.Booking{
			booking(1, 100, domain.StatusConfirmed, "2:00 PM"),
			booking(2, 200, domain.StatusConfirmed, "2:00 PM"),
		},
		map[int64]*userservice.User{
			100: {ID: 100, Email: "first@example.com"},
			200: {ID: 200, Email: "second@example.com"},
		},
	)
	f.promoter.promoted = []*domain.Booking{{ID: 9, UserID: 900, Status: domain.StatusConfirmed}}

	resp, err := f.uc.Execute(context.Background(), cancelRequest(1, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, f.promoter.calls)
	require.Len(t, f.promoter.seenSlots, 1)
	require.Len(t, resp.Promoted, 1)
	assert.Equal(t, int64(9), resp.Promoted[0].ID)
}

func TestExecute_CancelPendingFreesNothing(t *testing.T) {
	f := newFixture(
		[]*domain.Booking{booking(1, 100, domain.StatusPending, "2:00 PM")},
		map[int64]*userservice.User{100: {ID: 100, Email: "first@example.com"}},
	)

	resp, err := f.uc.Execute(context.Background(), cancelRequest(1))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, f.bookings.updated[1])
	assert.Zero(t, f.promoter.calls)
	assert.Empty(t, resp.Promoted)
}

func TestExecute_BulkReschedule(t *testing.T) {
	f := newFixture(
		[]*domain.Booking{booking(1, 100, domain.StatusConfirmed, "2:00 PM")},
		map[int64]*userservice.User{100: {ID: 100, Email: "first@example.com"}},
	)

	resp, err := f.uc.Execute(context.Background(), rescheduleRequest(1))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusModified, f.bookings.updated[1])
	assert.Zero(t, f.promoter.calls)
	assert.Equal(t, 1, resp.EmailsSent)
	require.Len(t, f.mail.bodies, 1)
	assert.Contains(t, f.mail.bodies[0], "Previous schedule: 2025-06-01 at 2:00 PM (Room A)")
	assert.Contains(t, f.mail.bodies[0], "New schedule: 2025-06-08 at 3:00 PM (Room C)")
}

func TestExecute_ReschedulePendingSkipped(t *testing.T) {
	// Перенос применим только к активным бронированиям
	f := newFixture(
		[]*domain.Booking{
			booking(1, 100, domain.StatusPending, "2:00 PM"),
			booking(2, 200, domain.StatusConfirmed, "4:00 PM"),
		},
		map[int64]*userservice.User{
			100: {ID: 100, Email: "first@example.com"},
			200: {ID: 200, Email: "second@example.com"},
		},
	)

	resp, err := f.uc.Execute(context.Background(), rescheduleRequest(1, 2))
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, resp.UpdatedIDs)
	_, touched := f.bookings.updated[1]
	assert.False(t, touched)
}

func TestExecute_MessageIncludedInEmail(t *testing.T) {
	f := newFixture(
		[]*domain.Booking{booking(1, 100, domain.StatusConfirmed, "2:00 PM")},
		map[int64]*userservice.User{100: {ID: 100, Email: "first@example.com"}},
	)

	req := cancelRequest(1)
	req.Message = "The teacher is unavailable this week."

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, f.mail.bodies, 1)
	assert.Contains(t, f.mail.bodies[0], "The teacher is unavailable this week.")
}

func TestExecute_EmailFailuresCounted(t *testing.T) {
	f := newFixture(
		[]*domain.Booking{
			booking(1, 100, domain.StatusConfirmed, "2:00 PM"),
			booking(2, 200, domain.StatusConfirmed, "4:00 PM"),
			booking(3, 300, domain.StatusConfirmed, "6:00 PM"),
		},
		map[int64]*userservice.User{
			100: {ID: 100, Email: "first@example.com"},
			200: {ID: 200, Email: ""},
		},
	)
	f.mail.failFor = map[string]bool{"first@example.com": true}

	resp, err := f.uc.Execute(context.Background(), cancelRequest(1, 2, 3))
	require.NoError(t, err)

	// Отправка упала, адрес пуст, пользователь не найден: три неудачи,
	// но статусы переведены у всех трёх
	assert.Zero(t, resp.EmailsSent)
	assert.Equal(t, 3, resp.EmailsFailed)
	assert.Len(t, f.bookings.updated, 3)
}

func TestExecute_NoValidBookings(t *testing.T) {
	f := newFixture(
		[]*domain.Booking{booking(1, 100, domain.StatusCancelled, "2:00 PM")},
		nil,
	)

	_, err := f.uc.Execute(context.Background(), cancelRequest(1, 99))
	assert.ErrorIs(t, err, ErrNoValidBookings)
}

func TestExecute_PromotionFailureRollsBack(t *testing.T) {
	f := newFixture(
		[]*domain.Booking{booking(1, 100, domain.StatusConfirmed, "2:00 PM")},
		map[int64]*userservice.User{100: {ID: 100, Email: "first@example.com"}},
	)
	f.promoter.err = errors.New("update failed")

	_, err := f.uc.Execute(context.Background(), cancelRequest(1))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.mail.sent)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(nil, nil)

	t.Run("non-admin forbidden", func(t *testing.T) {
		req := cancelRequest(1)
		req.Actor = domain.Actor{UserID: 100}
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty booking ids", func(t *testing.T) {
		_, err := f.uc.Execute(context.Background(), cancelRequest())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown action", func(t *testing.T) {
		req := cancelRequest(1)
		req.Action = "archive"
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reschedule requires complete new slot", func(t *testing.T) {
		req := rescheduleRequest(1)
		req.NewSlot.Place = ""
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("message too long", func(t *testing.T) {
		req := cancelRequest(1)
		for len(req.Message) <= domain.MaxBulkMessageLength {
			req.Message += "x"
		}
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_BulkCancelSerializationRetry(t *testing.T) {
	// Повтор сериализуемой транзакции не дублирует обработанные
	// бронирования: ответ и письма строятся по последней попытке
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, 100, domain.StatusConfirmed, "2:00 PM"),
	}}
	mail := &fakeMailClient{}
	promoter := &fakePromoter{}
	uc := NewUseCase(
		repo,
		&fakeTeacherRepo{teacher: testTeacher()},
		&fakeUserClient{users: map[int64]*userservice.User{
			100: {ID: 100, Email: "student@example.com"},
		}},
		mail,
		promoter,
		retryingTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), cancelRequest(1))
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, resp.UpdatedIDs)
	assert.Equal(t, 1, resp.EmailsSent)
	assert.Zero(t, resp.EmailsFailed)
	assert.Equal(t, []string{"student@example.com"}, mail.sent)
}
