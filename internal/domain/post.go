package domain

import "time"

// Post is a portfolio item attached to exactly one Business. The image
// is required at creation; UserID is the creator and gates deletion.
type Post struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	BusinessID  int64     `json:"business_id" gorm:"not null;index"`
	UserID      int64     `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	ImageURL    string    `json:"image_url" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Post) TableName() string { return "business_posts" }
