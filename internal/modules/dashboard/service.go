package dashboard

import (
	"context"
	"errors"

	"pluggedin/internal/domain"
)

var ErrInvalidRequest = errors.New("invalid_request")

type BusinessReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]domain.Business, error)
}

type PostReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]domain.Post, error)
}

type Service struct {
	businesses BusinessReader
	posts      PostReader
}

func NewService(businesses BusinessReader, posts PostReader) *Service {
	return &Service{businesses: businesses, posts: posts}
}

// GetOverview assembles both per-owner collections. Business deletion
// cascades to posts at the store layer, so the two lists can never show
// a post whose business is gone.
func (s *Service) GetOverview(ctx context.Context, userID int64) (*Overview, error) {
	if userID <= 0 {
		return nil, ErrInvalidRequest
	}

	businesses, err := s.businesses.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Overview{Businesses: businesses, Posts: posts}, nil
}
