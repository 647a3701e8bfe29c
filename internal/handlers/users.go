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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, utils.SuccessResponse("User retrieved", user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	user, err := h.userService.UpdateProfile(middleware.CurrentUser(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, utils.ErrorResponse("Email already registered", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update profile", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Profile updated", user))
}

func (h *UserHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.userService.List(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to list users", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Users retrieved", users))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid user ID", ""))
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	user, err := h.userService.AdminUpdate(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("User not found", ""))
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, utils.ErrorResponse("Email already registered", ""))
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Unknown role", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update user", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("User updated", user))
}

func (h *UserHandler) Activate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid user ID", ""))
		return
	}

	activate, err := strconv.ParseBool(c.DefaultQuery("activate", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid activate flag", ""))
		return
	}

	user, err := h.userService.SetActive(id, activate)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("User not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update user", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("User activation updated", user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid user ID", ""))
		return
	}

	if err := h.userService.Delete(middleware.CurrentUser(c), id); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("User not found", ""))
		case errors.Is(err, services.ErrSelfDelete):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("You cannot delete your own account", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete user", err.Error()))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
