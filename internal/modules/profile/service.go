package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitjourney/internal/domain"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("display profile not found")

// DisplayProfileRepositoryInterface lists only the methods profile service uses
type DisplayProfileRepositoryInterface interface {
	Get(ctx context.Context, userID string) (*domain.DisplayProfile, error)
	Save(ctx context.Context, p *domain.DisplayProfile) error
}

type UpdateProfileRequest struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Age    *float64 `json:"age,omitempty" validate:"omitempty,gte=0"`
	Height *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
}

type Service struct {
	profiles DisplayProfileRepositoryInterface
	now      func() int64 // millis clock, injected for deterministic tests
}

func NewService(profiles DisplayProfileRepositoryInterface, now func() int64) *Service {
	if now == nil {
		now = func() int64 { return time.Now().UnixMilli() }
	}
	return &Service{profiles: profiles, now: now}
}

// Upsert merges the request into the user's display profile. Fields absent
// from the request are left untouched; only the caller's own row is ever
// written.
func (s *Service) Upsert(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.DisplayProfile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p = &domain.DisplayProfile{UserID: userID}
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Height != nil {
		p.Height = *req.Height
	}
	p.UpdatedAt = s.now()

	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.DisplayProfile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}
