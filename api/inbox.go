package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/eventbooking/internal/service/inbox"
	"github.com/gin-gonic/gin"
)

type InboxHandler struct {
	service inbox.InboxUseCase
}

func NewInboxHandler(service inbox.InboxUseCase) *InboxHandler {
	return &InboxHandler{service: service}
}

func (h *InboxHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("/:id/read", h.markRead)
}

func (h *InboxHandler) list(c *gin.Context) {
	unread := false
	if v := c.Query("unread"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(c, "unread must be a boolean")
			return
		}
		unread = b
	}

	list, err := h.service.List(c.Request.Context(), identityFrom(c), unread)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *InboxHandler) markRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), identityFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
