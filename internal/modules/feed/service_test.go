package feed

import (
	"context"
	"errors"
	"testing"

	"fitjourney/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCardLister struct {
	mock.Mock
}

func (m *mockCardLister) ListAll(ctx context.Context) ([]domain.ProgressCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgressCard), args.Error(1)
}

func feedCard(id string, createdAt int64, weight, waist float64) domain.ProgressCard {
	return domain.ProgressCard{
		ID:          id,
		OwnerID:     "owner-" + id,
		Name:        "Card " + id,
		Weight:      weight,
		Waist:       waist,
		BeforeImage: "https://cdn/" + id + "-before.jpg",
		AfterImage:  "https://cdn/" + id + "-after.jpg",
		CreatedAt:   createdAt,
	}
}

func ids(cards []domain.ProgressCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortKey("newest"))
	assert.Equal(t, SortOldest, ParseSortKey("oldest"))
	assert.Equal(t, SortMostProgress, ParseSortKey("most_progress"))
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("garbage"))
}

func TestAssemble_ExcludesIncompleteCards(t *testing.T) {
	complete := feedCard("a", 100, 80, 90)
	noAfter := feedCard("b", 200, 80, 90)
	noAfter.AfterImage = ""
	unnamed := feedCard("c", 300, 80, 90)
	unnamed.Name = ""

	got := Assemble([]domain.ProgressCard{complete, noAfter, unnamed}, SortNewest)

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestAssemble_NewestAndOldestAreReversals(t *testing.T) {
	cards := []domain.ProgressCard{
		feedCard("old", 100, 80, 90),
		feedCard("mid", 200, 80, 90),
		feedCard("new", 300, 80, 90),
	}

	assert.Equal(t, []string{"new", "mid", "old"}, ids(Assemble(cards, SortNewest)))
	assert.Equal(t, []string{"old", "mid", "new"}, ids(Assemble(cards, SortOldest)))
}

func TestAssemble_MostProgressOrdersByScore(t *testing.T) {
	cards := []domain.ProgressCard{
		feedCard("light", 100, 60, 70),
		feedCard("heavy", 200, 100, 110),
		feedCard("middle", 300, 80, 90),
	}

	got := Assemble(cards, SortMostProgress)

	assert.Equal(t, []string{"heavy", "middle", "light"}, ids(got))
}

func TestAssemble_StableOnEqualKeys(t *testing.T) {
	cards := []domain.ProgressCard{
		feedCard("first", 100, 80, 90),
		feedCard("second", 100, 80, 90),
		feedCard("third", 100, 80, 90),
	}

	got := Assemble(cards, SortMostProgress)

	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestAssemble_EmptyPool(t *testing.T) {
	got := Assemble(nil, SortNewest)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_Feed(t *testing.T) {
	lister := new(mockCardLister)
	lister.On("ListAll", mock.Anything).Return([]domain.ProgressCard{
		feedCard("old", 100, 80, 90),
		feedCard("new", 200, 80, 90),
	}, nil)

	svc := NewService(lister)
	got, err := svc.Feed(context.Background(), SortNewest)

	assert.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, ids(got))
	lister.AssertExpectations(t)
}

func TestService_Feed_RepoError(t *testing.T) {
	lister := new(mockCardLister)
	lister.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

	svc := NewService(lister)
	_, err := svc.Feed(context.Background(), SortNewest)

	assert.Error(t, err)
}
