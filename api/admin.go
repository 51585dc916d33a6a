package api

import (
	"net/http"

	"github.com/Domenick1991/eventbooking/internal/service/admin"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service admin.AdminUseCase
}

func NewAdminHandler(service admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.POST("/users/:id/ban", h.ban)
}

func (h *AdminHandler) ban(c *gin.Context) {
	res, err := h.service.BanUser(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
