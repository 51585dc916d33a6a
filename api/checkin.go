package api

import (
	"net/http"

	"github.com/Domenick1991/eventbooking/internal/service/checkin"
	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	service checkin.CheckInUseCase
}

type checkInRequest struct {
	Code string `json:"code"`
}

func NewCheckInHandler(service checkin.CheckInUseCase) *CheckInHandler {
	return &CheckInHandler{service: service}
}

func (h *CheckInHandler) Register(router *gin.RouterGroup) {
	router.POST("/events/:id/checkin", h.checkIn)
}

func (h *CheckInHandler) checkIn(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ticket, err := h.service.CheckIn(c.Request.Context(), identityFrom(c), eventID, req.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
