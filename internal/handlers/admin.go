package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventify/internal/services"
	"eventify/internal/utils"
)

type AdminHandler struct {
	statsService *services.StatsService
}

func NewAdminHandler(statsService *services.StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to collect stats", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Stats retrieved", stats))
}
