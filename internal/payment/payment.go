// Package payment is the boundary to the external payment processor.
package payment

import (
	"context"
	"errors"
	"strings"
)

// Authorizer approves or declines a charge. A false result with a nil error
// is a decline; a non-nil error means the processor could not be reached.
type Authorizer interface {
	Authorize(ctx context.Context, amountCents int64, instrument string) (bool, error)
}

// Func adapts a plain function to Authorizer.
type Func func(ctx context.Context, amountCents int64, instrument string) (bool, error)

func (f Func) Authorize(ctx context.Context, amountCents int64, instrument string) (bool, error) {
	return f(ctx, amountCents, instrument)
}

// DeclinePrefix marks sandbox instruments that are always declined.
const DeclinePrefix = "decline"

var ErrUnavailable = errors.New("payment processor unavailable")

// Sandbox approves every positive charge unless the instrument starts with
// DeclinePrefix. Instruments starting with "error" simulate an outage.
type Sandbox struct{}

func (Sandbox) Authorize(ctx context.Context, amountCents int64, instrument string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	switch {
	case strings.HasPrefix(instrument, "error"):
		return false, ErrUnavailable
	case strings.HasPrefix(instrument, DeclinePrefix):
		return false, nil
	}
	return amountCents > 0, nil
}

var (
	_ Authorizer = Sandbox{}
	_ Authorizer = Func(nil)
)
