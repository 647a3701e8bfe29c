package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eventify/internal/middleware"
	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/utils"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) List(c *gin.Context) {
	filter := models.EventFilter{}

	filter.CategoryID, _ = strconv.ParseInt(c.Query("category_id"), 10, 64)
	filter.OrganizerID, _ = strconv.ParseInt(c.Query("organizer_id"), 10, 64)
	filter.Search = c.Query("search")
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid start_date", err.Error()))
			return
		}
		filter.StartAfter = t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid end_date", err.Error()))
			return
		}
		filter.EndBefore = t
	}
	if v := c.Query("price_min"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid price_min", err.Error()))
			return
		}
		filter.PriceMin = &p
	}
	if v := c.Query("price_max"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid price_max", err.Error()))
			return
		}
		filter.PriceMax = &p
	}

	events, err := h.eventService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to list events", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Events retrieved", events))
}

func (h *EventHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid event ID", ""))
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to retrieve event", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Event retrieved", event))
}

func (h *EventHandler) Create(c *gin.Context) {
	var req models.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	event, err := h.eventService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found", ""))
		case errors.Is(err, services.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("End date must be after start date", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create event", err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Event created", event))
}

func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid event ID", ""))
		return
	}

	var req models.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", ""))
		case errors.Is(err, services.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found", ""))
		case errors.Is(err, services.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("End date must be after start date", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update event", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Event updated", event))
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid event ID", ""))
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete event", err.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}
