package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Events   *EventHandler
	Bookings *BookingHandler
	CheckIn  *CheckInHandler
	Waitlist *WaitlistHandler
	Admin    *AdminHandler
	Inbox    *InboxHandler
}

func NewRouter(log *slog.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), Identity(), RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	h.Events.Register(v1.Group("/events"))
	h.Bookings.Register(v1)
	h.CheckIn.Register(v1)
	h.Waitlist.Register(v1)
	h.Admin.Register(v1.Group("/admin"))
	h.Inbox.Register(v1.Group("/notifications"))

	return router
}
