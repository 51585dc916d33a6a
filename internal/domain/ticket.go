package domain

import (
	"strings"
	"time"
)

type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusCompleted TicketStatus = "completed"
)

// HeldStatuses are the ticket statuses that count against event capacity.
var HeldStatuses = []TicketStatus{TicketStatusActive, TicketStatusCompleted}

// CancelLockout is how long before the start a holder can no longer cancel.
const CancelLockout = 5 * time.Minute

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusActive, TicketStatusCancelled, TicketStatusCompleted:
		return true
	}
	return false
}

func (s TicketStatus) Final() bool {
	return s == TicketStatusCancelled || s == TicketStatusCompleted
}

// Held reports whether a ticket in this status occupies a capacity slot.
func (s TicketStatus) Held() bool {
	return s == TicketStatusActive || s == TicketStatusCompleted
}

// TicketTrigger names what is asking a ticket to change state.
type TicketTrigger string

const (
	TriggerCancel       TicketTrigger = "cancel"
	TriggerRemove       TicketTrigger = "remove"
	TriggerCheckIn      TicketTrigger = "check_in"
	TriggerComplete     TicketTrigger = "complete"
	TriggerEventCancel  TicketTrigger = "event_cancelled"
	TriggerHolderBanned TicketTrigger = "holder_banned"
)

// Transition is the input to the ticket state machine.
type Transition struct {
	Trigger TicketTrigger
	Event   Event
	Now     time.Time
	Reason  string
}

// Next applies t to a ticket currently in status s and returns the new
// status. It never mutates anything; callers persist the result.
func (s TicketStatus) Next(t Transition) (TicketStatus, error) {
	if s.Final() {
		return s, ErrAlreadyFinal
	}
	if s != TicketStatusActive {
		return s, Invalid("status", "unknown ticket status "+string(s))
	}

	switch t.Trigger {
	case TriggerCancel:
		if !t.Now.Before(t.Event.StartAt.Add(-CancelLockout)) {
			return s, ErrTooLateToCancel
		}
		return TicketStatusCancelled, nil
	case TriggerRemove:
		if strings.TrimSpace(t.Reason) == "" {
			return s, Invalid("reason", "a reason is required to remove an attendee")
		}
		if !t.Now.Before(t.Event.StartAt) {
			return s, ErrTooLateToCancel
		}
		return TicketStatusCancelled, nil
	case TriggerCheckIn:
		if t.Event.Status != EventStatusActive {
			return s, &EventNotActiveError{Status: t.Event.Status}
		}
		return TicketStatusCompleted, nil
	case TriggerComplete:
		if !t.Event.Ended(t.Now) {
			return s, Invalid("event", "event has not ended")
		}
		return TicketStatusCompleted, nil
	case TriggerEventCancel, TriggerHolderBanned:
		return TicketStatusCancelled, nil
	}
	return s, Invalid("trigger", "unknown trigger "+string(t.Trigger))
}

type Ticket struct {
	ID             int64        `json:"id"`
	EventID        int64        `json:"event_id"`
	HolderID       string       `json:"holder_id"`
	Code           string       `json:"code"`
	PricePaidCents int64        `json:"price_paid_cents"`
	Status         TicketStatus `json:"status"`
	CancelReason   string       `json:"cancel_reason,omitempty"`
	PurchasedAt    time.Time    `json:"purchased_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
