package repository

import (
	"context"

	"fitjourney/internal/domain"

	"gorm.io/gorm"
)

type DisplayProfileRepository struct {
	db *gorm.DB
}

func NewDisplayProfileRepository(db *gorm.DB) *DisplayProfileRepository {
	return &DisplayProfileRepository{db: db}
}

type displayProfileModel struct {
	UserID      string   `gorm:"column:user_id;primaryKey"`
	Name        *string  `gorm:"column:name"`
	Age         *float64 `gorm:"column:age"`
	Height      *float64 `gorm:"column:height"`
	UpdatedAtMs int64    `gorm:"column:updated_at_ms"`
}

func (displayProfileModel) TableName() string { return "display_profiles" }

func (r *DisplayProfileRepository) Get(ctx context.Context, userID string) (*domain.DisplayProfile, error) {
	var m displayProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, err
	}

	p := &domain.DisplayProfile{
		UserID:    m.UserID,
		UpdatedAt: m.UpdatedAtMs,
	}
	if m.Name != nil {
		p.Name = *m.Name
	}
	if m.Age != nil {
		p.Age = *m.Age
	}
	if m.Height != nil {
		p.Height = *m.Height
	}
	return p, nil
}

// Save upserts the single row keyed by user id.
func (r *DisplayProfileRepository) Save(ctx context.Context, p *domain.DisplayProfile) error {
	m := displayProfileModel{
		UserID:      p.UserID,
		Name:        &p.Name,
		Age:         &p.Age,
		Height:      &p.Height,
		UpdatedAtMs: p.UpdatedAt,
	}
	return r.db.WithContext(ctx).Save(&m).Error
}
