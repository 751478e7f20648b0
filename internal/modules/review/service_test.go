package review

import (
	"context"
	"errors"
	"testing"

	"pluggedin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && args.Error(0) == nil {
		rv.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepo) GetByBusinessID(ctx context.Context, businessID int64) ([]domain.Review, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepo) DeleteOwned(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockBusinessGate struct {
	mock.Mock
}

func (m *MockBusinessGate) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func TestSummarize_Average(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5}, {Rating: 3}, {Rating: 4},
	}

	s := Summarize(reviews)

	assert.Equal(t, 3, s.Count)
	if assert.NotNil(t, s.Average) {
		assert.Equal(t, 4.0, *s.Average)
	}
}

func TestSummarize_RoundsToOneDecimal(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 4},
	}

	s := Summarize(reviews)

	if assert.NotNil(t, s.Average) {
		assert.Equal(t, 4.3, *s.Average)
	}
}

func TestSummarize_NoReviewsMeansNoAverage(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.Average, "zero reviews must yield no average, not 0.0")
}

func TestService_Create_Success(t *testing.T) {
	reviews := new(MockReviewRepo)
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Business{ID: 10, UserID: 1}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(reviews, businesses)
	rv, err := svc.Create(context.Background(), 2, 10, CreateReviewRequest{
		ReviewerName: "Jordan",
		Rating:       5,
		Comment:      "Great snacks",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), rv.ID)
	assert.Equal(t, int64(2), rv.UserID)
	reviews.AssertExpectations(t)
}

func TestService_Create_OwnerCannotReview(t *testing.T) {
	reviews := new(MockReviewRepo)
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Business{ID: 10, UserID: 1}, nil)

	svc := NewService(reviews, businesses)
	_, err := svc.Create(context.Background(), 1, 10, CreateReviewRequest{
		ReviewerName: "Sam",
		Rating:       5,
	})

	assert.ErrorIs(t, err, ErrOwnBusiness)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RatingOutOfRange(t *testing.T) {
	svc := NewService(new(MockReviewRepo), new(MockBusinessGate))

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Create(context.Background(), 2, 10, CreateReviewRequest{
			ReviewerName: "Jordan",
			Rating:       rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d must be rejected", rating)
	}
}

func TestService_Create_DuplicateIsConflict(t *testing.T) {
	reviews := new(MockReviewRepo)
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Business{ID: 10, UserID: 1}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New(`constraint failed: UNIQUE constraint failed: reviews.business_id, reviews.user_id (2067)`))

	svc := NewService(reviews, businesses)
	_, err := svc.Create(context.Background(), 2, 10, CreateReviewRequest{
		ReviewerName: "Jordan",
		Rating:       4,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed, "unique violation must surface as a distinct conflict")
}

func TestService_Create_PostgresDuplicateIsConflict(t *testing.T) {
	reviews := new(MockReviewRepo)
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Business{ID: 10, UserID: 1}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_reviews_business_user" (SQLSTATE 23505)`))

	svc := NewService(reviews, businesses)
	_, err := svc.Create(context.Background(), 2, 10, CreateReviewRequest{
		ReviewerName: "Jordan",
		Rating:       4,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_Create_BusinessNotFound(t *testing.T) {
	reviews := new(MockReviewRepo)
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(reviews, businesses)
	_, err := svc.Create(context.Background(), 2, 404, CreateReviewRequest{
		ReviewerName: "Jordan",
		Rating:       4,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_AuthorOnly(t *testing.T) {
	reviews := new(MockReviewRepo)
	reviews.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Review{ID: 7, UserID: 2}, nil)

	svc := NewService(reviews, new(MockBusinessGate))
	err := svc.Delete(context.Background(), 3, 7)

	assert.ErrorIs(t, err, ErrForbidden)
	reviews.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_Success(t *testing.T) {
	reviews := new(MockReviewRepo)
	reviews.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Review{ID: 7, UserID: 2}, nil)
	reviews.On("DeleteOwned", mock.Anything, int64(7), int64(2)).Return(nil)

	svc := NewService(reviews, new(MockBusinessGate))
	err := svc.Delete(context.Background(), 2, 7)

	assert.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestService_ListByBusiness_ReturnsSummary(t *testing.T) {
	reviews := new(MockReviewRepo)
	reviews.On("GetByBusinessID", mock.Anything, int64(10)).
		Return([]domain.Review{{Rating: 5}, {Rating: 3}, {Rating: 4}}, nil)

	svc := NewService(reviews, new(MockBusinessGate))
	items, summary, err := svc.ListByBusiness(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 3, summary.Count)
	if assert.NotNil(t, summary.Average) {
		assert.Equal(t, 4.0, *summary.Average)
	}
}
