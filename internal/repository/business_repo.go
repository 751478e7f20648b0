package repository

import (
	"context"

	"pluggedin/internal/domain"

	"gorm.io/gorm"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// GetAll returns every business, newest first. Filtering happens
// in-memory in the catalog service.
func (r *BusinessRepository) GetAll(ctx context.Context) ([]domain.Business, error) {
	var businesses []domain.Business
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	var b domain.Business
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Business, error) {
	var businesses []domain.Business
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BusinessRepository) Update(ctx context.Context, b *domain.Business) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// DeleteOwned removes a business and cascades to its posts and reviews
// in one transaction. The owner scope in the WHERE clause is the real
// authorization boundary; handler-level checks are advisory.
func (r *BusinessRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Business{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("business_id = ?", id).Delete(&domain.Post{}).Error; err != nil {
			return err
		}
		return tx.Where("business_id = ?", id).Delete(&domain.Review{}).Error
	})
}

func (r *BusinessRepository) SetProfileImage(ctx context.Context, id int64, url string) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Business{}).
		Where("id = ?", id).
		Update("profile_image_url", url)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
