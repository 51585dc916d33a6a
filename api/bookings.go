package api

import (
	"net/http"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type reserveRequest struct {
	Quantity          int    `json:"quantity"`
	PaymentInstrument string `json:"payment_instrument"`
}

type removeAttendeeRequest struct {
	Reason string `json:"reason"`
}

type reserveResponse struct {
	Tickets []domain.Ticket `json:"tickets"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/events/:id/tickets", h.reserve)
	router.GET("/tickets", h.list)
	router.DELETE("/tickets/:id", h.cancel)
	router.POST("/tickets/:id/remove", h.remove)
}

func (h *BookingHandler) reserve(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	tickets, err := h.service.Reserve(c.Request.Context(), identityFrom(c), booking.ReserveInput{
		EventID:           eventID,
		Quantity:          req.Quantity,
		PaymentInstrument: req.PaymentInstrument,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reserveResponse{Tickets: tickets})
}

func (h *BookingHandler) list(c *gin.Context) {
	tickets, err := h.service.ListTickets(c.Request.Context(), identityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ticket, err := h.service.CancelTicket(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *BookingHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req removeAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ticket, err := h.service.RemoveAttendee(c.Request.Context(), identityFrom(c), id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
