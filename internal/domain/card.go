package domain

// DefaultCardName is substituted when a stored card has no name.
const DefaultCardName = "Unnamed Profile"

// ProgressCard is one snapshot of a user's physical state at a point in time.
// Measurements are non-negative; CreatedAt is epoch milliseconds.
type ProgressCard struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Name        string  `json:"name"`
	Age         float64 `json:"age"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Chest       float64 `json:"chest"`
	Waist       float64 `json:"waist"`
	Hips        float64 `json:"hips"`
	BeforeImage string  `json:"before_image"`
	AfterImage  string  `json:"after_image"`
	CreatedAt   int64   `json:"created_at"`
}

// Complete reports whether the card is eligible for public feed display:
// it has a name and both before/after images uploaded.
func (c ProgressCard) Complete() bool {
	return c.Name != "" && c.BeforeImage != "" && c.AfterImage != ""
}
