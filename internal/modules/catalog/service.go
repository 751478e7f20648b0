package catalog

import (
	"context"
	"errors"

	"pluggedin/internal/domain"

	"gorm.io/gorm"
)

// BusinessRepo holds only the methods the catalog service uses.
type BusinessRepo interface {
	GetAll(ctx context.Context) ([]domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	Create(ctx context.Context, b *domain.Business) error
	Update(ctx context.Context, b *domain.Business) error
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}

type Service struct {
	businesses BusinessRepo
}

func NewService(businesses BusinessRepo) *Service {
	return &Service{businesses: businesses}
}

// List fetches the full collection and applies the filter in-memory,
// mirroring the browse view. Returns the empty-state hint when nothing
// matched.
func (s *Service) List(ctx context.Context, category domain.Category, query string) ([]domain.Business, string, error) {
	all, err := s.businesses.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered := Filter(all, category, query)
	if len(filtered) == 0 {
		return filtered, EmptyHint(query), nil
	}
	return filtered, "", nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Business, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	b, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateBusinessRequest) (*domain.Business, error) {
	if userID <= 0 {
		return nil, ErrInvalidRequest
	}
	if !domain.Category(req.CategoryID).Valid() {
		return nil, ErrInvalidCategory
	}

	b := &domain.Business{
		UserID:          userID,
		OwnerName:       req.OwnerName,
		BusinessName:    req.BusinessName,
		Tagline:         req.Tagline,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		InstagramHandle: req.InstagramHandle,
		WebsiteURL:      req.WebsiteURL,
	}

	if err := s.businesses.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update mutates a business. Owner only; IsVerified and ProfileImageURL
// are deliberately untouched here (admin process and upload module own
// those fields).
func (s *Service) Update(ctx context.Context, userID, businessID int64, req UpdateBusinessRequest) (*domain.Business, error) {
	if userID <= 0 || businessID <= 0 {
		return nil, ErrInvalidRequest
	}
	if !domain.Category(req.CategoryID).Valid() {
		return nil, ErrInvalidCategory
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

	b.OwnerName = req.OwnerName
	b.BusinessName = req.BusinessName
	b.Tagline = req.Tagline
	b.Description = req.Description
	b.CategoryID = req.CategoryID
	b.ContactEmail = req.ContactEmail
	b.ContactPhone = req.ContactPhone
	b.InstagramHandle = req.InstagramHandle
	b.WebsiteURL = req.WebsiteURL

	if err := s.businesses.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a business and cascades to its posts and reviews.
func (s *Service) Delete(ctx context.Context, userID, businessID int64) error {
	if userID <= 0 || businessID <= 0 {
		return ErrInvalidRequest
	}

	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.UserID != userID {
		return ErrForbidden
	}

	if err := s.businesses.DeleteOwned(ctx, businessID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
