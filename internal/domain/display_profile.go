package domain

// DisplayProfile is the per-user public display profile, one row per user.
// Updates are merge-upserts: fields absent from an update stay untouched.
type DisplayProfile struct {
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Age       float64 `json:"age"`
	Height    float64 `json:"height"`
	UpdatedAt int64   `json:"updated_at"` // epoch milliseconds
}
