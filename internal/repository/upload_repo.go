package repository

import (
	"context"

	"pluggedin/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

// Upsert inserts the upload record or, if (bucket, key) already exists,
// replaces the stored metadata. Mirrors the overwrite-if-exists policy
// of the object store itself.
func (r *UploadRepository) Upsert(ctx context.Context, u *domain.Upload) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bucket"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "file_url", "mime_type", "size", "updated_at"}),
		}).
		Create(u).Error
}

func (r *UploadRepository) GetByBucketKey(ctx context.Context, bucket, key string) (*domain.Upload, error) {
	var u domain.Upload
	err := r.db.WithContext(ctx).
		Where("bucket = ? AND key = ?", bucket, key).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UploadRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Upload, error) {
	var uploads []domain.Upload
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&uploads).Error
	return uploads, err
}
