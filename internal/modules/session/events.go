package session

import "time"

type State string

const (
	StateSignedIn  State = "signed_in"
	StateSignedOut State = "signed_out"
)

// Event is one session-state change pushed to a user's watchers.
type Event struct {
	State  State  `json:"state"`
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	At     int64  `json:"at"` // epoch milliseconds
}

func SignedIn(userID, email string) Event {
	return Event{State: StateSignedIn, UserID: userID, Email: email, At: time.Now().UnixMilli()}
}

func SignedOut(userID string) Event {
	return Event{State: StateSignedOut, UserID: userID, At: time.Now().UnixMilli()}
}
