package catalog

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not_found")
)
