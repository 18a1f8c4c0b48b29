package domain

import "time"

type AuthProvider string

const (
	ProviderPassword AuthProvider = "password"
	ProviderGoogle   AuthProvider = "google"
)

type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email" validate:"required,email"`
	PasswordHash string       `json:"-"`
	Provider     AuthProvider `json:"provider"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
