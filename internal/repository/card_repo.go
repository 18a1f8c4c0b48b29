package repository

import (
	"context"
	"time"

	"fitjourney/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// cardModel mirrors the stored row. Optional columns are pointers so that
// legacy rows with holes read back as nil and get defaulted in toDomainCard.
type cardModel struct {
	ID          string   `gorm:"column:id;primaryKey"`
	OwnerID     string   `gorm:"column:owner_id;index"`
	Name        *string  `gorm:"column:name"`
	Age         *float64 `gorm:"column:age"`
	Height      *float64 `gorm:"column:height"`
	Weight      *float64 `gorm:"column:weight"`
	Chest       *float64 `gorm:"column:chest"`
	Waist       *float64 `gorm:"column:waist"`
	Hips        *float64 `gorm:"column:hips"`
	BeforeImage *string  `gorm:"column:before_image"`
	AfterImage  *string  `gorm:"column:after_image"`
	CreatedAtMs int64    `gorm:"column:created_at_ms"`
}

func (cardModel) TableName() string { return "progress_cards" }

func toDomainCard(m cardModel) domain.ProgressCard {
	c := domain.ProgressCard{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      domain.DefaultCardName,
		CreatedAt: m.CreatedAtMs,
	}
	if m.Name != nil && *m.Name != "" {
		c.Name = *m.Name
	}
	if m.Age != nil {
		c.Age = *m.Age
	}
	if m.Height != nil {
		c.Height = *m.Height
	}
	if m.Weight != nil {
		c.Weight = *m.Weight
	}
	if m.Chest != nil {
		c.Chest = *m.Chest
	}
	if m.Waist != nil {
		c.Waist = *m.Waist
	}
	if m.Hips != nil {
		c.Hips = *m.Hips
	}
	if m.BeforeImage != nil {
		c.BeforeImage = *m.BeforeImage
	}
	if m.AfterImage != nil {
		c.AfterImage = *m.AfterImage
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().UnixMilli()
	}
	return c
}

func toCardModel(c *domain.ProgressCard) cardModel {
	return cardModel{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Name:        &c.Name,
		Age:         &c.Age,
		Height:      &c.Height,
		Weight:      &c.Weight,
		Chest:       &c.Chest,
		Waist:       &c.Waist,
		Hips:        &c.Hips,
		BeforeImage: &c.BeforeImage,
		AfterImage:  &c.AfterImage,
		CreatedAtMs: c.CreatedAt,
	}
}

// Create assigns the opaque id and the server-side creation timestamp.
func (r *CardRepository) Create(ctx context.Context, c *domain.ProgressCard) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().UnixMilli()
	}
	m := toCardModel(c)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*domain.ProgressCard, error) {
	var m cardModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	c := toDomainCard(m)
	return &c, nil
}

func (r *CardRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.ProgressCard, error) {
	var rows []cardModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at_ms DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cards := make([]domain.ProgressCard, 0, len(rows))
	for _, m := range rows {
		cards = append(cards, toDomainCard(m))
	}
	return cards, nil
}

func (r *CardRepository) ListAll(ctx context.Context) ([]domain.ProgressCard, error) {
	var rows []cardModel
	err := r.db.WithContext(ctx).Order("created_at_ms DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cards := make([]domain.ProgressCard, 0, len(rows))
	for _, m := range rows {
		cards = append(cards, toDomainCard(m))
	}
	return cards, nil
}

// UpdateMeasurements writes only the given columns; callers restrict the set.
func (r *CardRepository) UpdateMeasurements(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&cardModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&cardModel{}).Error
}
