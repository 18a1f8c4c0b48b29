package feed

import (
	"context"
	"sort"

	"fitjourney/internal/domain"
)

// CardLister is the one repository method the feed needs.
type CardLister interface {
	ListAll(ctx context.Context) ([]domain.ProgressCard, error)
}

type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortMostProgress SortKey = "most_progress"
)

// ParseSortKey maps a query value to a sort key, defaulting to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest:
		return SortOldest
	case SortMostProgress:
		return SortMostProgress
	default:
		return SortNewest
	}
}

type Service struct {
	cards CardLister
}

func NewService(cards CardLister) *Service {
	return &Service{cards: cards}
}

// Feed returns the public community feed in the requested order.
func (s *Service) Feed(ctx context.Context, key SortKey) ([]domain.ProgressCard, error) {
	all, err := s.cards.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Assemble(all, key), nil
}

// Assemble keeps only complete cards (named, both images uploaded) and
// orders them. The sort is stable so cards with equal keys keep their
// incoming relative order.
func Assemble(cards []domain.ProgressCard, key SortKey) []domain.ProgressCard {
	out := make([]domain.ProgressCard, 0, len(cards))
	for _, c := range cards {
		if c.Complete() {
			out = append(out, c)
		}
	}

	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt < out[j].CreatedAt
		})
	case SortMostProgress:
		sort.SliceStable(out, func(i, j int) bool {
			return progressScore(out[i]) > progressScore(out[j])
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	}

	return out
}

// progressScore ranks a card by 0.1*(weight+waist). It reads a single
// card's absolute measurements, not a before/after delta, so it is a
// magnitude heuristic rather than a true progress measure.
func progressScore(c domain.ProgressCard) float64 {
	weightLoss := c.Weight - c.Weight*0.9
	waistReduction := c.Waist - c.Waist*0.9
	return weightLoss + waistReduction
}
