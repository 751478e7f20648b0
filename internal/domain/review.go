package domain

import "time"

// Review is a star rating with optional comment, unique per
// (business, user). The unique index is the authoritative guard; a
// violation must surface as a conflict, not a generic failure.
type Review struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	BusinessID   int64     `json:"business_id" gorm:"not null;uniqueIndex:idx_reviews_business_user"`
	UserID       int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_business_user"`
	ReviewerName string    `json:"reviewer_name" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
