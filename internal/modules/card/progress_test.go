package card

import (
	"testing"

	"fitjourney/internal/domain"

	"github.com/stretchr/testify/assert"
)

func cardAt(createdAt int64, weight, waist float64) domain.ProgressCard {
	return domain.ProgressCard{Weight: weight, Waist: waist, CreatedAt: createdAt}
}

func TestSummarize_TwoCards(t *testing.T) {
	// Newest first: B (newer) then A (older).
	a := cardAt(0, 80, 90)
	b := cardAt(10*dayMillis, 72, 85)

	got := Summarize([]domain.ProgressCard{b, a})

	assert.NotNil(t, got)
	assert.Equal(t, 10, got.DaysSinceStart)
	assert.Equal(t, float64(8), got.WeightLoss)
	assert.Equal(t, float64(5), got.WaistReduction)
	// round(50 × (8/80 + 5/90)) = round(7.78) = 8
	assert.Equal(t, 8, got.ProgressPercentage)
}

func TestSummarize_FewerThanTwoCards(t *testing.T) {
	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]domain.ProgressCard{cardAt(0, 80, 90)}))
}

func TestSummarize_PartialDayFloors(t *testing.T) {
	a := cardAt(0, 80, 90)
	b := cardAt(3*dayMillis+dayMillis/2, 80, 90)

	got := Summarize([]domain.ProgressCard{b, a})

	assert.Equal(t, 3, got.DaysSinceStart)
}

func TestSummarize_RegressionClampsToZero(t *testing.T) {
	// Weight and waist both increased.
	a := cardAt(0, 70, 80)
	b := cardAt(5*dayMillis, 78, 86)

	got := Summarize([]domain.ProgressCard{b, a})

	assert.Equal(t, float64(0), got.WeightLoss)
	assert.Equal(t, float64(0), got.WaistReduction)
	assert.Equal(t, 0, got.ProgressPercentage)
}

func TestSummarize_CapsAtHundred(t *testing.T) {
	a := cardAt(0, 100, 100)
	b := cardAt(dayMillis, 1, 1)

	got := Summarize([]domain.ProgressCard{b, a})

	assert.Equal(t, 100, got.ProgressPercentage)
}

func TestSummarize_ZeroBaselineContributesNothing(t *testing.T) {
	// First card recorded no weight; only the waist term counts.
	a := cardAt(0, 0, 90)
	b := cardAt(dayMillis, 72, 81)

	got := Summarize([]domain.ProgressCard{b, a})

	// round(50 × 9/90) = 5, no NaN/Inf from the zero weight baseline
	assert.Equal(t, 5, got.ProgressPercentage)
	assert.Equal(t, float64(0), got.WeightLoss)
	assert.Equal(t, float64(9), got.WaistReduction)
}
