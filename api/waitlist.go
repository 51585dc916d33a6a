package api

import (
	"net/http"

	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	service waitlist.WaitlistUseCase
}

type joinWaitlistResponse struct {
	EventID int64 `json:"event_id"`
	Joined  bool  `json:"joined"`
}

func NewWaitlistHandler(service waitlist.WaitlistUseCase) *WaitlistHandler {
	return &WaitlistHandler{service: service}
}

func (h *WaitlistHandler) Register(router *gin.RouterGroup) {
	router.POST("/events/:id/waitlist", h.join)
	router.DELETE("/events/:id/waitlist", h.leave)
}

// join answers 201 for a new entry and 200 when the caller was already on
// the list.
func (h *WaitlistHandler) join(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}
	joined, err := h.service.Join(c.Request.Context(), identityFrom(c), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusOK
	if joined {
		status = http.StatusCreated
	}
	c.JSON(status, joinWaitlistResponse{EventID: eventID, Joined: joined})
}

func (h *WaitlistHandler) leave(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Leave(c.Request.Context(), identityFrom(c), eventID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
