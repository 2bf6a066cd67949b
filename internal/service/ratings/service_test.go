package ratings

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/EduBridge-BookingService/internal/domain"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
)

type fakeRatingRepo struct {
	ratings   map[string]*domain.Rating
	aggregate domain.RatingAggregate
	upsertErr error
}

func key(userID, teacherID int64) string {
	return fmt.Sprintf("%d/%d", userID, teacherID)
}

func (f *fakeRatingRepo) Upsert(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	if f.ratings == nil {
		f.ratings = make(map[string]*domain.Rating)
	}
	f.ratings[key(rating.UserID, rating.TeacherID)] = rating
	return rating, nil
}

func (f *fakeRatingRepo) Aggregate(_ context.Context, teacherID int64) (domain.RatingAggregate, error) {
	return f.aggregate, nil
}

func (f *fakeRatingRepo) HasRated(_ context.Context, userID, teacherID int64) (bool, error) {
	_, ok := f.ratings[key(userID, teacherID)]
	return ok, nil
}

type fakeTeacherRepo struct {
	teacher      *domain.Teacher
	getErr       error
	storedAvg    *float64
	storedCount  *int
}

func (f *fakeTeacherRepo) GetByID(_ context.Context, id int64) (*domain.Teacher, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.teacher, nil
}

func (f *fakeTeacherRepo) UpdateRatingAggregate(_ context.Context, id int64, ratingAvg float64, ratingCount int) error {
	f.storedAvg = &ratingAvg
	f.storedCount = &ratingCount
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testTeacher() *domain.Teacher {
	return &domain.Teacher{ID: 7, Name: "Mr. Hassan", Subject: "Math"}
}

func actor() domain.Actor {
	return domain.Actor{UserID: 100}
}

func TestRate_StoresNormalizedValue(t *testing.T) {
	ratings := &fakeRatingRepo{aggregate: domain.RatingAggregate{Sum: 0.4, Count: 1}}
	teachers := &fakeTeacherRepo{teacher: testTeacher()}
	svc := NewService(ratings, teachers, fakeTxManager{}, nopLogger{})

	resp, err := svc.Rate(context.Background(), actor(), 7, 4)
	require.NoError(t, err)

	stored := ratings.ratings[key(100, 7)]
	require.NotNil(t, stored)
	assert.InDelta(t, 0.4, stored.Value, 1e-9)

	assert.InDelta(t, 0.4, resp.DisplayRating, 1e-9)
	assert.Equal(t, 1, resp.RatingCount)
	assert.False(t, resp.Replaced)
	require.NotNil(t, teachers.storedAvg)
	assert.InDelta(t, 0.4, *teachers.storedAvg, 1e-9)
	require.NotNil(t, teachers.storedCount)
	assert.Equal(t, 1, *teachers.storedCount)
}

func TestRate_DisplayRatingClamped(t *testing.T) {
	// Сумма нормализованных оценок выше 5.0 отображается как 5.0
	ratings := &fakeRatingRepo{aggregate: domain.RatingAggregate{Sum: 6.3, Count: 14}}
	teachers := &fakeTeacherRepo{teacher: testTeacher()}
	svc := NewService(ratings, teachers, fakeTxManager{}, nopLogger{})

	resp, err := svc.Rate(context.Background(), actor(), 7, 5)
	require.NoError(t, err)

	assert.Equal(t, 5.0, resp.DisplayRating)
	assert.Equal(t, 14, resp.RatingCount)
}

func TestRate_RepeatRatingReplaces(t *testing.T) {
	// Повторная оценка того же преподавателя перезаписывает прежнюю
	ratings := &fakeRatingRepo{aggregate: domain.RatingAggregate{Sum: 0.5, Count: 1}}
	teachers := &fakeTeacherRepo{teacher: testTeacher()}
	svc := NewService(ratings, teachers, fakeTxManager{}, nopLogger{})

	first, err := svc.Rate(context.Background(), actor(), 7, 3)
	require.NoError(t, err)
	assert.False(t, first.Replaced)

	second, err := svc.Rate(context.Background(), actor(), 7, 5)
	require.NoError(t, err)
	assert.True(t, second.Replaced)

	stored := ratings.ratings[key(100, 7)]
	require.NotNil(t, stored)
	assert.InDelta(t, 0.5, stored.Value, 1e-9)
	assert.Equal(t, 1, second.RatingCount)
}

func TestRate_ValueBounds(t *testing.T) {
	svc := NewService(&fakeRatingRepo{}, &fakeTeacherRepo{teacher: testTeacher()}, fakeTxManager{}, nopLogger{})

	for _, v := range []float64{0, 0.5, 5.5, -1} {
		_, err := svc.Rate(context.Background(), actor(), 7, v)
		assert.ErrorIs(t, err, ErrInvalidInput, "value=%v", v)
	}
}

func TestRate_TeacherNotFound(t *testing.T) {
	teachers := &fakeTeacherRepo{getErr: teacherRepo.ErrTeacherNotFound}
	svc := NewService(&fakeRatingRepo{}, teachers, fakeTxManager{}, nopLogger{})

	_, err := svc.Rate(context.Background(), actor(), 7, 4)
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestRate_RepositoryErrorWrapped(t *testing.T) {
	ratings := &fakeRatingRepo{upsertErr: errors.New("conflict")}
	svc := NewService(ratings, &fakeTeacherRepo{teacher: testTeacher()}, fakeTxManager{}, nopLogger{})

	_, err := svc.Rate(context.Background(), actor(), 7, 4)
	assert.ErrorIs(t, err, ErrInternal)
}
