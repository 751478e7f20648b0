package review

import (
	"context"
	"errors"
	"math"
	"strings"

	"pluggedin/internal/domain"

	"gorm.io/gorm"
)

// ReviewRepo holds only the methods the review service uses.
type ReviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByBusinessID(ctx context.Context, businessID int64) ([]domain.Review, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}

// BusinessGate resolves the reviewed business for ownership checks.
type BusinessGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

type Service struct {
	reviews    ReviewRepo
	businesses BusinessGate
}

func NewService(reviews ReviewRepo, businesses BusinessGate) *Service {
	return &Service{reviews: reviews, businesses: businesses}
}

// Create stores a review. Owners may not review their own business, and
// the storage-layer unique constraint is the authority on one review
// per (business, user); its violation maps to ErrAlreadyReviewed.
func (s *Service) Create(ctx context.Context, userID, businessID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || businessID <= 0 || req.ReviewerName == "" {
		return nil, ErrInvalidRequest
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID == userID {
		return nil, ErrOwnBusiness
	}

	rv := &domain.Review{
		BusinessID:   businessID,
		UserID:       userID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
	}
	if req.Comment != "" {
		comment := req.Comment
		rv.Comment = &comment
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

// ListByBusiness returns the reviews (newest first) plus the recomputed
// aggregate.
func (s *Service) ListByBusiness(ctx context.Context, businessID int64) ([]domain.Review, Summary, error) {
	if businessID <= 0 {
		return nil, Summary{}, ErrInvalidRequest
	}

	reviews, err := s.reviews.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, Summary{}, err
	}
	return reviews, Summarize(reviews), nil
}

// Delete removes a review; author only.
func (s *Service) Delete(ctx context.Context, userID, reviewID int64) error {
	if userID <= 0 || reviewID <= 0 {
		return ErrInvalidRequest
	}

	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.UserID != userID {
		return ErrForbidden
	}

	if err := s.reviews.DeleteOwned(ctx, reviewID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Summarize recomputes the aggregate from scratch. The average is
// rounded to one decimal place; zero reviews yield no average at all.
func Summarize(reviews []domain.Review) Summary {
	if len(reviews) == 0 {
		return Summary{Count: 0, Average: nil}
	}

	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return Summary{Count: len(reviews), Average: &avg}
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "23505") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
