package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", fmt.Errorf("cancel: %w", domain.ErrForbidden), http.StatusForbidden, "forbidden"},
		{"not found", fmt.Errorf("get event 1: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{"validation", domain.Invalid("quantity", "must be positive"), http.StatusBadRequest, "validation"},
		{"payment", domain.ErrPaymentDeclined, http.StatusPaymentRequired, "payment_declined"},
		{"capacity", &domain.CapacityExceededError{Requested: 3, Remaining: 1}, http.StatusConflict, "capacity_exceeded"},
		{"checked in", &domain.AlreadyCheckedInError{TicketID: 1, HolderID: "alice"}, http.StatusConflict, "already_checked_in"},
		{"ticket cancelled", domain.ErrTicketCancelled, http.StatusConflict, "ticket_cancelled"},
		{"final", domain.ErrAlreadyFinal, http.StatusConflict, "already_final"},
		{"too late", domain.ErrTooLateToCancel, http.StatusUnprocessableEntity, "too_late_to_cancel"},
		{"not active", &domain.EventNotActiveError{Status: domain.EventStatusCancelled}, http.StatusUnprocessableEntity, "event_not_active"},
		{"floor", &domain.CapacityFloorError{Held: 5, Requested: 3}, http.StatusConflict, "capacity_floor"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/", nil, alice)

			writeError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode[errorResponse](t, w).Code)
		})
	}
}

func TestWriteError_Details(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", nil, alice)
	writeError(c, &domain.CapacityExceededError{Requested: 3, Remaining: 1})
	resp := decode[errorResponse](t, w)
	if assert.NotNil(t, resp.Remaining) {
		assert.Equal(t, 1, *resp.Remaining)
	}

	c, w = newTestContext(http.MethodGet, "/", nil, alice)
	writeError(c, &domain.CapacityFloorError{Held: 5, Requested: 3})
	resp = decode[errorResponse](t, w)
	if assert.NotNil(t, resp.MustRemove) {
		assert.Equal(t, 2, *resp.MustRemove)
	}

	c, w = newTestContext(http.MethodGet, "/", nil, alice)
	writeError(c, &domain.AlreadyCheckedInError{TicketID: 9, HolderID: "bob"})
	assert.Equal(t, "bob", decode[errorResponse](t, w).HolderID)
}

func TestWriteError_HidesInternalText(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", nil, alice)
	writeError(c, errors.New("dial tcp 10.0.0.1:5432: refused"))
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}
