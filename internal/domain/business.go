package domain

import "time"

// Business is a listed student-run enterprise. UserID is the exclusive
// owner: only that user may mutate or delete the record. IsVerified is
// set by an administrative process, never by the owner.
type Business struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	UserID          int64     `json:"user_id" gorm:"not null;index"`
	OwnerName       string    `json:"name" gorm:"column:name"`
	BusinessName    string    `json:"business_name" gorm:"not null"`
	Tagline         string    `json:"tagline,omitempty"`
	Description     string    `json:"description"`
	CategoryID      int       `json:"category_id" gorm:"not null"`
	ContactEmail    string    `json:"contact_email" gorm:"not null"`
	ContactPhone    *string   `json:"contact_phone,omitempty"`
	InstagramHandle *string   `json:"instagram_handle,omitempty"`
	WebsiteURL      *string   `json:"website_url,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Business) TableName() string { return "businesses" }

// Category returns the typed category of the business.
func (b Business) Category() Category { return Category(b.CategoryID) }
