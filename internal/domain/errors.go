package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrPaymentDeclined  = errors.New("payment declined")
	ErrAlreadyFinal     = errors.New("already in a final state")
	ErrTooLateToCancel  = errors.New("too late to cancel")
	ErrAlreadyCheckedIn = errors.New("ticket already checked in")
	ErrTicketCancelled  = errors.New("ticket cancelled")
	ErrEventNotActive   = errors.New("event is not active")
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
	ErrInternal         = errors.New("internal error")
)

// ValidationError reports malformed input. It matches ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Reason
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid is a shorthand for building a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CapacityExceededError carries how many slots were left when a reservation
// was rejected.
type CapacityExceededError struct {
	Requested int
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d, remaining %d", e.Requested, e.Remaining)
}

func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }

// AlreadyCheckedInError identifies the attendee that already redeemed the
// ticket, so the scanning operator has context.
type AlreadyCheckedInError struct {
	TicketID int64
	HolderID string
}

func (e *AlreadyCheckedInError) Error() string {
	return fmt.Sprintf("ticket %d already checked in by %s", e.TicketID, e.HolderID)
}

func (e *AlreadyCheckedInError) Is(target error) bool { return target == ErrAlreadyCheckedIn }

type EventNotActiveError struct {
	Status EventStatus
}

func (e *EventNotActiveError) Error() string {
	return fmt.Sprintf("event is not active (status %s)", e.Status)
}

func (e *EventNotActiveError) Is(target error) bool { return target == ErrEventNotActive }

// CapacityFloorError rejects a capacity change that would put the event
// below the number of tickets already held.
type CapacityFloorError struct {
	Held      int
	Requested int
}

// MustRemove is the number of tickets that have to be cancelled before the
// requested capacity can be applied.
func (e *CapacityFloorError) MustRemove() int { return e.Held - e.Requested }

func (e *CapacityFloorError) Error() string {
	return fmt.Sprintf("capacity %d is below the %d tickets already held: remove %d tickets first",
		e.Requested, e.Held, e.MustRemove())
}

func (e *CapacityFloorError) Is(target error) bool { return target == ErrValidation }
