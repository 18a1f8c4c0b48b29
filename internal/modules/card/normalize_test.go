package card

import (
	"testing"
	"time"

	"fitjourney/internal/domain"

	"github.com/stretchr/testify/assert"
)

const frozenNow = int64(1700000000000)

func frozenClock() int64 { return frozenNow }

func TestNormalizer_FullDocument(t *testing.T) {
	n := NewNormalizer(frozenClock)

	got := n.Normalize(RawCard{
		"id":          "doc-1",
		"userid":      "user-1",
		"name":        "Week one",
		"age":         float64(29),
		"height":      float64(168),
		"weight":      float64(80),
		"chest":       float64(95),
		"waist":       float64(90),
		"hips":        float64(102),
		"beforeImage": "https://cdn/img/before.jpg",
		"afterImage":  "https://cdn/img/after.jpg",
		"createdAt":   float64(1690000000000),
	})

	assert.Equal(t, domain.ProgressCard{
		ID:          "doc-1",
		OwnerID:     "user-1",
		Name:        "Week one",
		Age:         29,
		Height:      168,
		Weight:      80,
		Chest:       95,
		Waist:       90,
		Hips:        102,
		BeforeImage: "https://cdn/img/before.jpg",
		AfterImage:  "https://cdn/img/after.jpg",
		CreatedAt:   1690000000000,
	}, got)
}

func TestNormalizer_EmptyDocument(t *testing.T) {
	n := NewNormalizer(frozenClock)

	got := n.Normalize(RawCard{})

	assert.Equal(t, domain.DefaultCardName, got.Name)
	assert.Equal(t, frozenNow, got.CreatedAt)
	assert.Zero(t, got.Age)
	assert.Zero(t, got.Weight)
	assert.Zero(t, got.Waist)
	assert.Empty(t, got.BeforeImage)
	assert.Empty(t, got.AfterImage)
}

func TestNormalizer_MistypedFields(t *testing.T) {
	n := NewNormalizer(frozenClock)

	got := n.Normalize(RawCard{
		"name":        "",
		"age":         "twenty nine",
		"weight":      true,
		"waist":       nil,
		"hips":        float64(-5),
		"beforeImage": 42,
		"createdAt":   "yesterday",
	})

	assert.Equal(t, domain.DefaultCardName, got.Name)
	assert.Zero(t, got.Age)
	assert.Zero(t, got.Weight)
	assert.Zero(t, got.Waist)
	assert.Zero(t, got.Hips, "negative measurements clamp to zero")
	assert.Empty(t, got.BeforeImage)
	assert.Equal(t, frozenNow, got.CreatedAt, "unrecognized timestamp falls back to now")
}

func TestNormalizer_PlatformTimestamp(t *testing.T) {
	n := NewNormalizer(frozenClock)

	got := n.Normalize(RawCard{
		"createdAt": map[string]any{
			"seconds":     float64(1690000123),
			"nanoseconds": float64(456000000),
		},
	})
	assert.Equal(t, int64(1690000123456), got.CreatedAt)

	got = n.Normalize(RawCard{"createdAt": time.UnixMilli(1690000000042)})
	assert.Equal(t, int64(1690000000042), got.CreatedAt)
}

func TestNormalizer_IntegerNumbers(t *testing.T) {
	n := NewNormalizer(frozenClock)

	got := n.Normalize(RawCard{
		"weight":    int(75),
		"createdAt": int64(1690000000000),
	})

	assert.Equal(t, float64(75), got.Weight)
	assert.Equal(t, int64(1690000000000), got.CreatedAt)
}

func TestNormalizer_RoundTripPreservesFields(t *testing.T) {
	n := NewNormalizer(frozenClock)

	raw := RawCard{
		"id":          "doc-9",
		"userid":      "user-9",
		"name":        "Checkpoint",
		"age":         float64(41),
		"height":      float64(181.5),
		"weight":      float64(92.3),
		"chest":       float64(104),
		"waist":       float64(99.1),
		"hips":        float64(103),
		"beforeImage": "/static/uploads/images/user-9/before-1.jpg",
		"afterImage":  "/static/uploads/images/user-9/after-1.jpg",
		"createdAt":   float64(1680000000000),
	}

	got := n.Normalize(raw)

	// Every string and numeric field survives verbatim; only defaulting and
	// timestamp coercion are allowed to change values.
	assert.Equal(t, raw["name"], got.Name)
	assert.Equal(t, raw["age"], got.Age)
	assert.Equal(t, raw["height"], got.Height)
	assert.Equal(t, raw["weight"], got.Weight)
	assert.Equal(t, raw["chest"], got.Chest)
	assert.Equal(t, raw["waist"], got.Waist)
	assert.Equal(t, raw["hips"], got.Hips)
	assert.Equal(t, raw["beforeImage"], got.BeforeImage)
	assert.Equal(t, raw["afterImage"], got.AfterImage)
	assert.Equal(t, int64(1680000000000), got.CreatedAt)
}
