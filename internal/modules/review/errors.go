package review

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrInvalidRating   = errors.New("invalid_rating")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not_found")
	ErrOwnBusiness     = errors.New("own_business")
	ErrAlreadyReviewed = errors.New("already_reviewed")
)
