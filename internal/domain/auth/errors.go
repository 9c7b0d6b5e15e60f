package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
