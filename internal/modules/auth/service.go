package auth

import (
	"context"
	"errors"
	"strings"

	"fitjourney/internal/domain"
	"fitjourney/internal/modules/session"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID, email string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users    UserRepositoryInterface
	jwt      jwtService
	provider ProviderVerifier
	sessions SessionNotifier
}

func NewService(users UserRepositoryInterface, jwt jwtService, provider ProviderVerifier, sessions SessionNotifier) *Service {
	return &Service{
		users:    users,
		jwt:      jwt,
		provider: provider,
		sessions: sessions,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Provider:     domain.ProviderPassword,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// ExistsByEmail raced with a concurrent registration.
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.notify(user.ID, session.SignedIn(user.ID, user.Email))

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	// Provider accounts have no local password.
	if user.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.notify(user.ID, session.SignedIn(user.ID, user.Email))

	user.PasswordHash = ""
	return user, token, nil
}

// LoginWithProvider exchanges a verified third-party ID token for a local
// session, creating the account on first sign-in.
func (s *Service) LoginWithProvider(ctx context.Context, rawToken string) (*domain.User, string, error) {
	if s.provider == nil {
		return nil, "", ErrProviderNotEnabled
	}

	identity, err := s.provider.Verify(ctx, rawToken)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
		user = &domain.User{
			Email:    strings.ToLower(strings.TrimSpace(identity.Email)),
			Provider: domain.ProviderGoogle,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.notify(user.ID, session.SignedIn(user.ID, user.Email))

	user.PasswordHash = ""
	return user, token, nil
}

// Logout only broadcasts the state change; access tokens are stateless and
// expire on their own.
func (s *Service) Logout(ctx context.Context, userID string) {
	s.notify(userID, session.SignedOut(userID))
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) notify(userID string, event session.Event) {
	if s.sessions != nil {
		s.sessions.Publish(userID, event)
	}
}
