package upload

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrNotAnImage     = errors.New("file is not a supported image")
	ErrTooLarge       = errors.New("file exceeds the size limit")
)
