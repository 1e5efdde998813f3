package application

import "errors"

var (
	ErrValidation            = errors.New("validation failed")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrUserNotFound          = errors.New("user not found")
	ErrMentorProfileNotFound = errors.New("mentor profile not found")
	ErrMentorProfileExists   = errors.New("user already has a mentor profile")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
