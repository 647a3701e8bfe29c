package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventify/internal/middleware"
	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req models.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			// err names the missing event id
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", err.Error()))
		case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid order", err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create order", err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Order created", order))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListOrders(middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to list orders", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Orders retrieved", orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid order ID", ""))
		return
	}

	order, err := h.orderService.GetOrder(middleware.CurrentUser(c), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Order not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to retrieve order", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Order retrieved", order))
}
