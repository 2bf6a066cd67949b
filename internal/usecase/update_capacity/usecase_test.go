package update_capacity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

type fakeTeacherRepo struct {
	teacher    *domain.Teacher
	getErr     error
	updateErr  error
	updatedMax *int
}

func (f *fakeTeacherRepo) GetByID(_ context.Context, id int64) (*domain.Teacher, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.teacher, nil
}

func (f *fakeTeacherRepo) UpdateMaxStudents(_ context.Context, id int64, maxStudents int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedMax = &maxStudents
	return nil
}

type fakePromoter struct {
	promoted []*domain.Booking
	err      error
	calls    int
	seenMax  int
}

func (f *fakePromoter) PromoteForSchedule(_ context.Context, teacher *domain.Teacher) ([]*domain.Booking, error) {
	f.calls++
	f.seenMax = teacher.MaxStudentsPerGroup
	if f.err != nil {
		return nil, f.err
	}
	return f.promoted, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testTeacher(max int) *domain.Teacher {
	return &domain.Teacher{
		ID:                  7,
		Name:                "Mr. Hassan",
		Subject:             "Math",
		MaxStudentsPerGroup: max,
		Schedule: domain.Schedule{
			"2025-06-01": {"2:00 PM": "Room A"},
		},
	}
}

func adminRequest(max int) *Request {
	return &Request{
		Actor:       domain.Actor{UserID: 1, IsAdmin: true},
		TeacherID:   7,
		MaxStudents: max,
	}
}

func TestExecute_IncreaseTriggersScheduleScan(t *testing.T) {
	repo := &fakeTeacherRepo{teacher: testTeacher(2)}
	promoter := &fakePromoter{promoted: []*domain.Booking{
		{ID: 5, UserID: 50, Status: domain.StatusConfirmed},
		{ID: 6, UserID: 60, Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, promoter, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), adminRequest(4))
	require.NoError(t, err)

	require.NotNil(t, repo.updatedMax)
	assert.Equal(t, 4, *repo.updatedMax)
	assert.Equal(t, 1, promoter.calls)
	// Промоутеру видна уже новая вместимость
	assert.Equal(t, 4, promoter.seenMax)
	require.Len(t, resp.Promoted, 2)
	assert.Equal(t, int64(5), resp.Promoted[0].ID)
}

func TestExecute_DecreaseSkipsPromotion(t *testing.T) {
	repo := &fakeTeacherRepo{teacher: testTeacher(3)}
	promoter := &fakePromoter{}
	uc := NewUseCase(repo, promoter, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), adminRequest(2))
	require.NoError(t, err)

	require.NotNil(t, repo.updatedMax)
	assert.Equal(t, 2, *repo.updatedMax)
	assert.Zero(t, promoter.calls)
	assert.Empty(t, resp.Promoted)
}

func TestExecute_SameCapacitySkipsPromotion(t *testing.T) {
	repo := &fakeTeacherRepo{teacher: testTeacher(3)}
	promoter := &fakePromoter{}
	uc := NewUseCase(repo, promoter, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), adminRequest(3))
	require.NoError(t, err)
	assert.Zero(t, promoter.calls)
}

func TestExecute_NonAdminForbidden(t *testing.T) {
	repo := &fakeTeacherRepo{teacher: testTeacher(2)}
	uc := NewUseCase(repo, &fakePromoter{}, fakeTxManager{}, nopLogger{})

	req := adminRequest(4)
	req.Actor = domain.Actor{UserID: 100}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, repo.updatedMax)
}

func TestExecute_CapacityBounds(t *testing.T) {
	repo := &fakeTeacherRepo{teacher: testTeacher(2)}
	uc := NewUseCase(repo, &fakePromoter{}, fakeTxManager{}, nopLogger{})

	for _, max := range []int{0, -1, domain.MaxStudentsPerGroup + 1} {
		_, err := uc.Execute(context.Background(), adminRequest(max))
		assert.ErrorIs(t, err, ErrInvalidInput, "max=%d", max)
	}
}

func TestExecute_TeacherNotFound(t *testing.T) {
	repo := &fakeTeacherRepo{getErr: teacherRepo.ErrTeacherNotFound}
	uc := NewUseCase(repo, &fakePromoter{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), adminRequest(4))
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestExecute_PromotionFailureSurfaced(t *testing.T) {
	repo := &fakeTeacherRepo{teacher: testTeacher(2)}
	promoter := &fakePromoter{err: errors.New("update failed")}
	uc := NewUseCase(repo, promoter, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), adminRequest(4))
	assert.ErrorIs(t, err, ErrInternal)
}
