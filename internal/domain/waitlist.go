package domain

import "time"

// WaitlistEntry records interest in an event. It reserves nothing.
type WaitlistEntry struct {
	EventID  int64     `json:"event_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
