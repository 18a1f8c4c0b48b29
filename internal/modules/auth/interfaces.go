package auth

import (
	"context"

	"fitjourney/internal/domain"
	"fitjourney/internal/modules/session"
)

// UserRepositoryInterface lists only the methods auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SessionNotifier receives sign-in/sign-out events for the session stream.
type SessionNotifier interface {
	Publish(userID string, event session.Event)
}
