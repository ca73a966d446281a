package domain

import "errors"

var (
	ErrNotFound             = errors.New("record not found")
	ErrForbidden            = errors.New("access forbidden")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("email already registered")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
	ErrValidation           = errors.New("validation failed")
	ErrSessionRevoked       = errors.New("session has been signed out")
)
