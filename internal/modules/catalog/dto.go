package catalog

import (
	"pluggedin/internal/domain"
	"pluggedin/internal/pkg/utils"
)

type CreateBusinessRequest struct {
	OwnerName       string  `json:"name" validate:"required"`
	BusinessName    string  `json:"business_name" validate:"required"`
	Tagline         string  `json:"tagline,omitempty"`
	Description     string  `json:"description"`
	CategoryID      int     `json:"category_id" validate:"required"`
	ContactEmail    string  `json:"contact_email" validate:"required,email"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`
	WebsiteURL      *string `json:"website_url,omitempty" validate:"omitempty,url"`
}

type UpdateBusinessRequest struct {
	OwnerName       string  `json:"name" validate:"required"`
	BusinessName    string  `json:"business_name" validate:"required"`
	Tagline         string  `json:"tagline,omitempty"`
	Description     string  `json:"description"`
	CategoryID      int     `json:"category_id" validate:"required"`
	ContactEmail    string  `json:"contact_email" validate:"required,email"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`
	WebsiteURL      *string `json:"website_url,omitempty" validate:"omitempty,url"`
}

// BusinessCard is the browse-grid projection of a business.
type BusinessCard struct {
	ID              int64   `json:"id"`
	BusinessName    string  `json:"business_name"`
	Tagline         string  `json:"tagline,omitempty"`
	CategoryID      int     `json:"category_id"`
	Category        string  `json:"category"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

type ListBusinessesResponse struct {
	Businesses []BusinessCard `json:"businesses"`
	Total      int            `json:"total"`
	EmptyHint  string         `json:"empty_hint,omitempty"`
}

// BusinessDetail is the full profile page payload.
type BusinessDetail struct {
	domain.Business
	Category              string `json:"category"`
	ContactPhoneFormatted string `json:"contact_phone_formatted,omitempty"`
}

func toCard(b domain.Business) BusinessCard {
	return BusinessCard{
		ID:              b.ID,
		BusinessName:    b.BusinessName,
		Tagline:         b.Tagline,
		CategoryID:      b.CategoryID,
		Category:        b.Category().Name(),
		ProfileImageURL: b.ProfileImageURL,
	}
}

func toDetail(b domain.Business) BusinessDetail {
	d := BusinessDetail{
		Business: b,
		Category: b.Category().Name(),
	}
	if b.ContactPhone != nil {
		d.ContactPhoneFormatted = utils.FormatPhone(*b.ContactPhone)
	}
	return d
}

type CategoryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
