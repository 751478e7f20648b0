package review

import "pluggedin/internal/domain"

type CreateReviewRequest struct {
	ReviewerName string `json:"reviewer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment,omitempty"`
}

// Summary carries the derived aggregate. Average is nil when there are
// no reviews: a missing value, not 0.0.
type Summary struct {
	Count   int      `json:"count"`
	Average *float64 `json:"average,omitempty"`
}

type ListReviewsResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Summary Summary         `json:"summary"`
}
