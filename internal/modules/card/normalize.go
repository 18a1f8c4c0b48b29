package card

import (
	"encoding/json"
	"time"

	"fitjourney/internal/domain"
)

// RawCard is a stored document as it comes out of a legacy export: loosely
// typed, with fields possibly missing or of the wrong type.
type RawCard map[string]any

// Normalizer converts raw documents into canonical progress cards. It is
// total over its input: malformed storage data must never crash display
// logic, so every field falls back to a defined default instead of erroring.
type Normalizer struct {
	now func() int64 // injected millis clock, for deterministic tests
}

func NewNormalizer(now func() int64) *Normalizer {
	if now == nil {
		now = func() int64 { return time.Now().UnixMilli() }
	}
	return &Normalizer{now: now}
}

// Normalize maps a raw document to a ProgressCard. Missing or falsy numbers
// become 0, a missing name becomes the default placeholder, missing images
// become empty strings, and an unusable createdAt becomes "now".
func (n *Normalizer) Normalize(raw RawCard) domain.ProgressCard {
	c := domain.ProgressCard{
		ID:          asString(raw["id"]),
		OwnerID:     asString(raw["userid"]),
		Name:        asString(raw["name"]),
		Age:         asNumber(raw["age"]),
		Height:      asNumber(raw["height"]),
		Weight:      asNumber(raw["weight"]),
		Chest:       asNumber(raw["chest"]),
		Waist:       asNumber(raw["waist"]),
		Hips:        asNumber(raw["hips"]),
		BeforeImage: asString(raw["beforeImage"]),
		AfterImage:  asString(raw["afterImage"]),
		CreatedAt:   n.asMillis(raw["createdAt"]),
	}
	if c.Name == "" {
		c.Name = domain.DefaultCardName
	}
	return c
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		f, _ = n.Float64()
	}
	if f < 0 {
		return 0
	}
	return f
}

// asMillis coerces a stored timestamp to epoch milliseconds. Platform
// timestamp objects ({seconds, nanoseconds}) are converted; plain numbers
// pass through; anything else resolves to the injected "now".
func (n *Normalizer) asMillis(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return int64(f)
		}
	case time.Time:
		return t.UnixMilli()
	case map[string]any:
		if sec, ok := timestampSeconds(t); ok {
			return sec
		}
	}
	return n.now()
}

func timestampSeconds(t map[string]any) (int64, bool) {
	sec, ok := t["seconds"]
	if !ok {
		return 0, false
	}
	secF, ok := toFloat(sec)
	if !ok {
		return 0, false
	}

	var nanosF float64
	if nanos, ok := t["nanoseconds"]; ok {
		nanosF, _ = toFloat(nanos)
	} else if nanos, ok := t["nanos"]; ok {
		nanosF, _ = toFloat(nanos)
	}

	return int64(secF)*1000 + int64(nanosF)/1_000_000, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
