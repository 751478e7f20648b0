package domain

import "time"

// Upload records a stored object. (Bucket, Key) is unique: re-uploading
// under the same key overwrites instead of duplicating.
type Upload struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Bucket    string    `json:"bucket" gorm:"not null;uniqueIndex:idx_uploads_bucket_key"`
	Key       string    `json:"key" gorm:"not null;uniqueIndex:idx_uploads_bucket_key"`
	FileURL   string    `json:"file_url" gorm:"not null"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Upload) TableName() string { return "uploads" }
