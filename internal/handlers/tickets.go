package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventify/internal/middleware"
	"eventify/internal/services"
	"eventify/internal/utils"
)

type TicketHandler struct {
	ticketService *services.TicketService
}

func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

func (h *TicketHandler) MyTickets(c *gin.Context) {
	tickets, err := h.ticketService.ListTickets(middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to list tickets", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Tickets retrieved", tickets))
}

func (h *TicketHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid ticket ID", ""))
		return
	}

	if err := h.ticketService.CancelTicket(middleware.CurrentUser(c), id); err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Ticket not found", ""))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.ErrorResponse("You do not have permission to cancel this ticket", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to cancel ticket", err.Error()))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
