package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	categories, err := h.categoryService.List(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to list categories", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Categories retrieved", categories))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category ID", ""))
		return
	}

	category, err := h.categoryService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to retrieve category", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Category retrieved", category))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNameTaken) {
			c.JSON(http.StatusConflict, utils.ErrorResponse("Category with this name already exists", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create category", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Category created", category))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category ID", ""))
		return
	}

	var req models.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	category, err := h.categoryService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found", ""))
		case errors.Is(err, services.ErrCategoryNameTaken):
			c.JSON(http.StatusConflict, utils.ErrorResponse("Category with this name already exists", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update category", err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Category updated", category))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category ID", ""))
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found", ""))
		case errors.Is(err, services.ErrCategoryInUse):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Cannot delete category that is used in events", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete category", err.Error()))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
