package domain

import "time"

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// MaxCapacity bounds the capacity an organiser can request.
const MaxCapacity = 100_000

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusActive, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

func (s EventStatus) Final() bool {
	return s == EventStatusCompleted || s == EventStatusCancelled
}

// Next validates a status change. Event status only moves forward from
// active and never leaves a final state.
func (s EventStatus) Next(to EventStatus) (EventStatus, error) {
	if s.Final() {
		return s, ErrAlreadyFinal
	}
	if !to.Final() {
		return s, Invalid("status", "event can only become completed or cancelled")
	}
	return to, nil
}

type Event struct {
	ID              int64       `json:"id"`
	OrganiserID     string      `json:"organiser_id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Venue           string      `json:"venue"`
	Capacity        int         `json:"capacity"`
	PriceCents      int64       `json:"price_cents"`
	StartAt         time.Time   `json:"start_at"`
	EndAt           time.Time   `json:"end_at"`
	Status          EventStatus `json:"status"`
	StatusChangedAt time.Time   `json:"status_changed_at"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (e *Event) Priced() bool { return e.PriceCents > 0 }

// Bookable reports whether new tickets may be issued at now.
func (e *Event) Bookable(now time.Time) error {
	if e.Status != EventStatusActive {
		return &EventNotActiveError{Status: e.Status}
	}
	if !now.Before(e.EndAt) {
		return &EventNotActiveError{Status: e.Status}
	}
	return nil
}

// Remaining returns the free slots given the number of held tickets.
func (e *Event) Remaining(held int) int {
	if r := e.Capacity - held; r > 0 {
		return r
	}
	return 0
}

// Ended reports whether the event's end time has passed.
func (e *Event) Ended(now time.Time) bool {
	return !e.EndAt.After(now)
}

type EventCategory struct {
	EventID  int64  `json:"event_id"`
	Category string `json:"category"`
}

// EventFlag is a report raised against an event by a user.
type EventFlag struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"event_id"`
	ReporterID string    `json:"reporter_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
