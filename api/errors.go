package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	Remaining  *int   `json:"remaining,omitempty"`
	MustRemove *int   `json:"must_remove,omitempty"`
	HolderID   string `json:"holder_id,omitempty"`
}

var statusBySentinel = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrPaymentDeclined, http.StatusPaymentRequired, "payment_declined"},
	{domain.ErrCapacityExceeded, http.StatusConflict, "capacity_exceeded"},
	{domain.ErrAlreadyCheckedIn, http.StatusConflict, "already_checked_in"},
	{domain.ErrTicketCancelled, http.StatusConflict, "ticket_cancelled"},
	{domain.ErrAlreadyFinal, http.StatusConflict, "already_final"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrTooLateToCancel, http.StatusUnprocessableEntity, "too_late_to_cancel"},
	{domain.ErrEventNotActive, http.StatusUnprocessableEntity, "event_not_active"},
}

// writeError maps a service error onto an HTTP status and a JSON body.
// Unknown errors are reported as 500 without leaking their text.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var floor *domain.CapacityFloorError
	if errors.As(err, &floor) {
		n := floor.MustRemove()
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error(), Code: "capacity_floor", MustRemove: &n})
		return
	}

	for _, m := range statusBySentinel {
		if !errors.Is(err, m.err) {
			continue
		}
		resp := errorResponse{Error: err.Error(), Code: m.code}
		var capErr *domain.CapacityExceededError
		if errors.As(err, &capErr) {
			resp.Remaining = &capErr.Remaining
		}
		var checked *domain.AlreadyCheckedInError
		if errors.As(err, &checked) {
			resp.HolderID = checked.HolderID
		}
		c.JSON(m.status, resp)
		return
	}

	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "internal"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg, Code: "validation"})
}
