package post

import (
	"context"
	"errors"

	"pluggedin/internal/domain"

	"gorm.io/gorm"
)

// PostRepo holds only the methods the post service uses.
type PostRepo interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetByBusinessID(ctx context.Context, businessID int64) ([]domain.Post, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}

// BusinessGate resolves the target business for the create check.
type BusinessGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

type Service struct {
	posts      PostRepo
	businesses BusinessGate
}

func NewService(posts PostRepo, businesses BusinessGate) *Service {
	return &Service{posts: posts, businesses: businesses}
}

// Create attaches a portfolio post to a business. The creator must own
// the business: a post cannot be attached to someone else's listing by
// supplying its id.
func (s *Service) Create(ctx context.Context, userID, businessID int64, req CreatePostRequest) (*domain.Post, error) {
	if userID <= 0 || businessID <= 0 || req.Title == "" || req.ImageURL == "" {
		return nil, ErrInvalidRequest
	}

	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	p := &domain.Post{
		BusinessID: businessID,
		UserID:     userID,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
	}
	if req.Description != "" {
		desc := req.Description
		p.Description = &desc
	}

	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByBusiness(ctx context.Context, businessID int64) ([]domain.Post, error) {
	if businessID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.posts.GetByBusinessID(ctx, businessID)
}

// Delete removes a post; creator only.
func (s *Service) Delete(ctx context.Context, userID, postID int64) error {
	if userID <= 0 || postID <= 0 {
		return ErrInvalidRequest
	}

	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if p.UserID != userID {
		return ErrForbidden
	}

	if err := s.posts.DeleteOwned(ctx, postID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
