package profile

import (
	"context"
	"testing"

	"fitjourney/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const frozenNow int64 = 1700000000000

func frozenClock() int64 { return frozenNow }

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Get(ctx context.Context, userID string) (*domain.DisplayProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayProfile), args.Error(1)
}

func (m *mockProfileRepo) Save(ctx context.Context, p *domain.DisplayProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func TestService_Upsert_CreatesWhenMissing(t *testing.T) {
	repo := new(mockProfileRepo)
	repo.On("Get", mock.Anything, "user-1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(p *domain.DisplayProfile) bool {
		return p.UserID == "user-1" && p.Name == "Alice" && p.Age == 30 && p.UpdatedAt == frozenNow
	})).Return(nil)

	svc := NewService(repo, frozenClock)
	got, err := svc.Upsert(context.Background(), "user-1", UpdateProfileRequest{
		Name: strPtr("  Alice  "),
		Age:  f64Ptr(30),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, float64(0), got.Height)
	repo.AssertExpectations(t)
}

func TestService_Upsert_MergesIntoExisting(t *testing.T) {
	repo := new(mockProfileRepo)
	repo.On("Get", mock.Anything, "user-1").Return(&domain.DisplayProfile{
		UserID:    "user-1",
		Name:      "Alice",
		Age:       30,
		Height:    170,
		UpdatedAt: 1,
	}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, frozenClock)
	got, err := svc.Upsert(context.Background(), "user-1", UpdateProfileRequest{
		Height: f64Ptr(171.5),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, float64(30), got.Age)
	assert.Equal(t, 171.5, got.Height)
	assert.Equal(t, frozenNow, got.UpdatedAt)
}

func TestService_Upsert_SaveError(t *testing.T) {
	repo := new(mockProfileRepo)
	repo.On("Get", mock.Anything, "user-1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Save", mock.Anything, mock.Anything).Return(gorm.ErrInvalidDB)

	svc := NewService(repo, frozenClock)
	_, err := svc.Upsert(context.Background(), "user-1", UpdateProfileRequest{Name: strPtr("Alice")})

	assert.Error(t, err)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(mockProfileRepo)
	repo.On("Get", mock.Anything, "user-1").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, nil)
	_, err := svc.Get(context.Background(), "user-1")

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_Get_Found(t *testing.T) {
	repo := new(mockProfileRepo)
	repo.On("Get", mock.Anything, "user-1").Return(&domain.DisplayProfile{
		UserID: "user-1",
		Name:   "Alice",
	}, nil)

	svc := NewService(repo, nil)
	got, err := svc.Get(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}
