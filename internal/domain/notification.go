package domain

import "time"

type EntityType string

const (
	EntityEvent  EntityType = "event"
	EntityTicket EntityType = "ticket"
)

type Notification struct {
	ID          int64      `json:"id"`
	RecipientID string     `json:"recipient_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	EntityType  EntityType `json:"entity_type,omitempty"`
	EntityID    int64      `json:"entity_id,omitempty"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ReminderWindow identifies one of the pre-start reminder slots.
type ReminderWindow string

const (
	ReminderDayBefore  ReminderWindow = "24h"
	ReminderHourBefore ReminderWindow = "1h"
)

// Lead is how far ahead of the start the reminder is due.
func (w ReminderWindow) Lead() time.Duration {
	switch w {
	case ReminderDayBefore:
		return 24 * time.Hour
	case ReminderHourBefore:
		return time.Hour
	}
	return 0
}
