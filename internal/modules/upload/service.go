package upload

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"pluggedin/internal/domain"

	"gorm.io/gorm"
)

const (
	BucketBusinessImages = "business-images"
	BucketPostImages     = "post-images"

	maxUploadSize = 5 << 20
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadRepo interface {
	Upsert(ctx context.Context, u *domain.Upload) error
}

type BusinessGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	SetProfileImage(ctx context.Context, id int64, url string) error
}

type PostGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	SetImage(ctx context.Context, id int64, url string) error
}

type Service struct {
	store      Store
	uploads    UploadRepo
	businesses BusinessGate
	posts      PostGate
}

func NewService(store Store, uploads UploadRepo, businesses BusinessGate, posts PostGate) *Service {
	return &Service{store: store, uploads: uploads, businesses: businesses, posts: posts}
}

// UploadBusinessImage stores the image under the business-images bucket
// keyed by the business id, so a re-upload replaces the previous file,
// and points the business profile at the new URL.
func (s *Service) UploadBusinessImage(ctx context.Context, userID, businessID int64, data []byte) (*domain.Upload, error) {
	if userID <= 0 || businessID <= 0 {
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

	up, err := s.save(ctx, userID, BucketBusinessImages, businessID, data)
	if err != nil {
		return nil, err
	}
	if err := s.businesses.SetProfileImage(ctx, businessID, up.FileURL); err != nil {
		return nil, err
	}
	return up, nil
}

// UploadPostImage does the same for posts, gated on the post creator.
func (s *Service) UploadPostImage(ctx context.Context, userID, postID int64, data []byte) (*domain.Upload, error) {
	if userID <= 0 || postID <= 0 {
		return nil, ErrInvalidRequest
	}

	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}

	up, err := s.save(ctx, userID, BucketPostImages, postID, data)
	if err != nil {
		return nil, err
	}
	if err := s.posts.SetImage(ctx, postID, up.FileURL); err != nil {
		return nil, err
	}
	return up, nil
}

func (s *Service) save(ctx context.Context, userID int64, bucket string, recordID int64, data []byte) (*domain.Upload, error) {
	if len(data) == 0 {
		return nil, ErrInvalidRequest
	}
	if len(data) > maxUploadSize {
		return nil, ErrTooLarge
	}

	mime := http.DetectContentType(data)
	ext, ok := imageExtensions[mime]
	if !ok {
		return nil, ErrNotAnImage
	}

	key := strconv.FormatInt(recordID, 10) + ext
	url, err := s.store.Save(bucket, key, data)
	if err != nil {
		return nil, err
	}

	up := &domain.Upload{
		UserID:   userID,
		Bucket:   bucket,
		Key:      key,
		FileURL:  url,
		MimeType: mime,
		Size:     int64(len(data)),
	}
	if err := s.uploads.Upsert(ctx, up); err != nil {
		return nil, err
	}
	return up, nil
}
