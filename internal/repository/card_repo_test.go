package repository

import (
	"context"
	"path/filepath"
	"testing"

	"fitjourney/internal/database"
	"fitjourney/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedCard(t *testing.T, repo *CardRepository, ownerID, name string, createdAt int64) *domain.ProgressCard {
	t.Helper()
	c := &domain.ProgressCard{
		OwnerID:     ownerID,
		Name:        name,
		Weight:      80,
		Waist:       90,
		BeforeImage: "https://cdn/before.jpg",
		AfterImage:  "https://cdn/after.jpg",
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestCardRepository_Create_AssignsIDAndTimestamp(t *testing.T) {
	repo := NewCardRepository(testDB(t))

	c := &domain.ProgressCard{OwnerID: "user-1", Name: "Week one"}
	require.NoError(t, repo.Create(context.Background(), c))

	assert.NotEmpty(t, c.ID)
	assert.Greater(t, c.CreatedAt, int64(0))

	got, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.OwnerID)
	assert.Equal(t, "Week one", got.Name)
	assert.Equal(t, c.CreatedAt, got.CreatedAt)
}

func TestCardRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCardRepository(testDB(t))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCardRepository_ListByOwner_NewestFirst(t *testing.T) {
	repo := NewCardRepository(testDB(t))

	seedCard(t, repo, "user-1", "oldest", 100)
	seedCard(t, repo, "user-1", "newest", 300)
	seedCard(t, repo, "user-1", "middle", 200)
	seedCard(t, repo, "user-2", "other", 400)

	cards, err := repo.ListByOwner(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, cards, 3)
	assert.Equal(t, "newest", cards[0].Name)
	assert.Equal(t, "middle", cards[1].Name)
	assert.Equal(t, "oldest", cards[2].Name)
}

func TestCardRepository_ListAll_SpansOwners(t *testing.T) {
	repo := NewCardRepository(testDB(t))

	seedCard(t, repo, "user-1", "mine", 100)
	seedCard(t, repo, "user-2", "theirs", 200)

	cards, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, "theirs", cards[0].Name)
	assert.Equal(t, "mine", cards[1].Name)
}

func TestCardRepository_UpdateMeasurements_TouchesOnlyGivenColumns(t *testing.T) {
	repo := NewCardRepository(testDB(t))
	c := seedCard(t, repo, "user-1", "Week one", 100)

	err := repo.UpdateMeasurements(context.Background(), c.ID, map[string]any{
		"weight": 76.5,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 76.5, got.Weight)
	assert.Equal(t, float64(90), got.Waist)
	assert.Equal(t, "Week one", got.Name)
	assert.Equal(t, c.CreatedAt, got.CreatedAt)
}

func TestCardRepository_Delete(t *testing.T) {
	repo := NewCardRepository(testDB(t))
	c := seedCard(t, repo, "user-1", "Week one", 100)

	require.NoError(t, repo.Delete(context.Background(), c.ID))

	_, err := repo.GetByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
