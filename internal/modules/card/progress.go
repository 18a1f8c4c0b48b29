package card

import (
	"math"

	"fitjourney/internal/domain"
)

const dayMillis = 24 * 60 * 60 * 1000

// Summary describes a user's progress between their oldest and newest cards.
type Summary struct {
	DaysSinceStart     int     `json:"days_since_start"`
	WeightLoss         float64 `json:"weight_loss"`
	WaistReduction     float64 `json:"waist_reduction"`
	ProgressPercentage int     `json:"progress_percentage"`
}

// Summarize derives progress from a newest-first slice of one owner's cards.
// Fewer than two snapshots means there is nothing to compare; that is not an
// error, the result is simply nil.
func Summarize(cards []domain.ProgressCard) *Summary {
	if len(cards) < 2 {
		return nil
	}

	latest := cards[0]
	first := cards[len(cards)-1]

	days := int((latest.CreatedAt - first.CreatedAt) / dayMillis)
	if days < 0 {
		days = 0
	}

	weightLoss := first.Weight - latest.Weight
	if weightLoss < 0 {
		weightLoss = 0
	}
	waistReduction := first.Waist - latest.Waist
	if waistReduction < 0 {
		waistReduction = 0
	}

	// A zero baseline contributes nothing rather than dividing by zero.
	var ratio float64
	if first.Weight > 0 {
		ratio += (first.Weight - latest.Weight) / first.Weight
	}
	if first.Waist > 0 {
		ratio += (first.Waist - latest.Waist) / first.Waist
	}

	pct := int(math.Round(50 * ratio))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	return &Summary{
		DaysSinceStart:     days,
		WeightLoss:         weightLoss,
		WaistReduction:     waistReduction,
		ProgressPercentage: pct,
	}
}
