package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already registered")
	ErrInvalidPassword = errors.New("invalid password")

	ErrServiceNotFound = errors.New("service not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrReviewNotFound  = errors.New("review not found")

	ErrForbidden         = errors.New("no permission")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
