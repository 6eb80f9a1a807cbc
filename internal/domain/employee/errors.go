package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPhotoTooLarge    = errors.New("photo exceeds the maximum allowed size")
	ErrInvalidPhotoType = errors.New("invalid photo type: only jpg, jpeg, png allowed")
)
