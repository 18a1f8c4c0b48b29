package card

import (
	"context"

	"fitjourney/internal/domain"
)

// CardRepositoryInterface lists only the methods card service uses
type CardRepositoryInterface interface {
	Create(ctx context.Context, c *domain.ProgressCard) error
	GetByID(ctx context.Context, id string) (*domain.ProgressCard, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.ProgressCard, error)
	UpdateMeasurements(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
