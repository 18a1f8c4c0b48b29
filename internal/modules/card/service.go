package card

import (
	"context"
	"errors"
	"strings"
	"sync"

	"fitjourney/internal/domain"
	"fitjourney/internal/modules/media"

	"gorm.io/gorm"
)

type Service struct {
	cards CardRepositoryInterface
	store media.Store
}

func NewService(cards CardRepositoryInterface, store media.Store) *Service {
	return &Service{cards: cards, store: store}
}

// ImageUploads carries the two image files a new card requires.
type ImageUploads struct {
	Before media.File
	After  media.File
}

// Create uploads both images and persists the card. The uploads run
// concurrently and creation joins on both: a card is only valid once both
// image URLs resolved. A failed upload aborts creation without rolling back
// its sibling; the keys are distinct, so the orphan object is harmless.
func (s *Service) Create(ctx context.Context, ownerID string, req CreateCardRequest, images ImageUploads) (*domain.ProgressCard, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	if images.Before.Reader == nil || images.After.Reader == nil {
		return nil, ErrValidation
	}

	var (
		wg                  sync.WaitGroup
		beforeURL, afterURL string
		beforeErr, afterErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		beforeURL, beforeErr = s.store.Upload(ctx, ownerID, images.Before, media.SlotBefore)
	}()
	go func() {
		defer wg.Done()
		afterURL, afterErr = s.store.Upload(ctx, ownerID, images.After, media.SlotAfter)
	}()
	wg.Wait()

	if beforeErr != nil {
		return nil, beforeErr
	}
	if afterErr != nil {
		return nil, afterErr
	}

	c := &domain.ProgressCard{
		OwnerID:     ownerID,
		Name:        name,
		Age:         req.Age,
		Height:      req.Height,
		Weight:      req.Weight,
		Chest:       req.Chest,
		Waist:       req.Waist,
		Hips:        req.Hips,
		BeforeImage: beforeURL,
		AfterImage:  afterURL,
	}

	if err := s.cards.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListMine returns the owner's cards, newest first.
func (s *Service) ListMine(ctx context.Context, ownerID string) ([]domain.ProgressCard, error) {
	return s.cards.ListByOwner(ctx, ownerID)
}

// Progress summarizes the owner's journey, or returns nil with fewer than
// two cards.
func (s *Service) Progress(ctx context.Context, ownerID string) (*Summary, error) {
	cards, err := s.cards.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Summarize(cards), nil
}

// Update mutates the restricted measurement subset of a card. Ownership is
// re-read from storage immediately before the write; client-side state is
// never trusted for authorization.
func (s *Service) Update(ctx context.Context, ownerID, id string, req UpdateCardRequest) (*domain.ProgressCard, error) {
	stored, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.Chest != nil {
		fields["chest"] = *req.Chest
	}
	if req.Waist != nil {
		fields["waist"] = *req.Waist
	}
	if req.Hips != nil {
		fields["hips"] = *req.Hips
	}
	if len(fields) == 0 {
		return stored, nil
	}

	if err := s.cards.UpdateMeasurements(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.cards.GetByID(ctx, id)
}

// Delete removes a card after re-verifying ownership against storage.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.getOwned(ctx, ownerID, id); err != nil {
		return err
	}
	return s.cards.Delete(ctx, id)
}

func (s *Service) getOwned(ctx context.Context, ownerID, id string) (*domain.ProgressCard, error) {
	stored, err := s.cards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	if stored.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return stored, nil
}
