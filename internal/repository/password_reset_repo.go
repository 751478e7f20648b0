package repository

import (
	"context"
	"time"

	"pluggedin/internal/domain"

	"gorm.io/gorm"
)

type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, pr *domain.PasswordReset) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

// GetValidByHash returns the reset matching hash that is unused and unexpired.
func (r *PasswordResetRepository) GetValidByHash(ctx context.Context, hash string) (*domain.PasswordReset, error) {
	var pr domain.PasswordReset
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", hash, time.Now()).
		First(&pr).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.PasswordReset{}).
		Where("id = ?", id).
		Update("used_at", time.Now()).Error
}

func (r *PasswordResetRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ? OR used_at IS NOT NULL", time.Now()).
		Delete(&domain.PasswordReset{})
	return tx.RowsAffected, tx.Error
}
