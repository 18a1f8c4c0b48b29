package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidProviderToken = errors.New("invalid provider token")
	ErrProviderNotEnabled   = errors.New("third-party sign-in is not configured")
	ErrUnauthorized         = errors.New("unauthorized")
)
