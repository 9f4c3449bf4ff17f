package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce_admin_backend/internal/services"
	"ecommerce_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CategoryHandler holds the category service.
type CategoryHandler struct {
	categoryService services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: cs}
}

// CreateCategory handles the creation of a new category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCategory: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		utils.LogError(err, "CreateCategory: Error from categoryService.CreateCategory")
		if errors.Is(err, services.ErrCategoryNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeConflict, "Category already exists"))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create category"))
		}
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetCategories handles fetching all categories with skip/limit paging.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	categories, err := h.categoryService.GetCategories(skip, limit)
	if err != nil {
		utils.LogError(err, "GetCategories: Error from categoryService.GetCategories")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch categories"))
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID handles fetching a single category.
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	idStr := c.Param("id")
	categoryID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid category ID format"))
		return
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		utils.LogError(err, "GetCategoryByID: Error from categoryService.GetCategoryByID for ID "+idStr)
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch category"))
		}
		return
	}
	c.JSON(http.StatusOK, category)
}
