package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/eventbooking/internal/service/events"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service events.EventUseCase
}

type updateCapacityRequest struct {
	Capacity int `json:"capacity"`
}

type reportRequest struct {
	Reason string `json:"reason"`
}

func NewEventHandler(service events.EventUseCase) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.PATCH("/:id/capacity", h.updateCapacity)
	router.POST("/:id/cancel", h.cancel)
	router.GET("/:id/attendees", h.attendees)
	router.POST("/:id/flags", h.report)
}

func (h *EventHandler) create(c *gin.Context) {
	var req events.CreateEventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	event, err := h.service.Create(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EventHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	event, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) updateCapacity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	event, err := h.service.UpdateCapacity(c.Request.Context(), identityFrom(c), id, req.Capacity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	event, err := h.service.Cancel(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) attendees(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tickets, err := h.service.ListAttendees(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *EventHandler) report(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	flag, err := h.service.Report(c.Request.Context(), identityFrom(c), id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flag)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
