package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce_admin_backend/internal/services"
	"ecommerce_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// CreateInventory handles creating the stock record of a product.
func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var req services.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateInventory: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	inventory, err := h.inventoryService.CreateInventory(req)
	if err != nil {
		utils.LogError(err, "CreateInventory: Error from inventoryService.CreateInventory")
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else if errors.Is(err, services.ErrInventoryExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeConflict, "Inventory for this product already exists"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create inventory"))
		}
		return
	}
	c.JSON(http.StatusOK, inventory)
}

// GetAllInventory handles listing all stock records with skip/limit paging.
func (h *InventoryHandler) GetAllInventory(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.inventoryService.GetAllInventory(skip, limit)
	if err != nil {
		utils.LogError(err, "GetAllInventory: Error from inventoryService.GetAllInventory")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch inventory"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetInventoryByProductID handles fetching one product's stock record.
func (h *InventoryHandler) GetInventoryByProductID(c *gin.Context) {
	idStr := c.Param("product_id")
	productID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format"))
		return
	}

	inventory, err := h.inventoryService.GetInventoryByProductID(productID)
	if err != nil {
		utils.LogError(err, "GetInventoryByProductID: Error from inventoryService for product "+idStr)
		if errors.Is(err, services.ErrInventoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory not found for this product"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch inventory"))
		}
		return
	}
	c.JSON(http.StatusOK, inventory)
}

// UpdateInventory handles partial updates of quantity and threshold.
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	idStr := c.Param("product_id")
	productID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format"))
		return
	}

	var req services.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateInventory: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	inventory, err := h.inventoryService.UpdateInventory(productID, req)
	if err != nil {
		utils.LogError(err, "UpdateInventory: Error from inventoryService for product "+idStr)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else if errors.Is(err, services.ErrInventoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory not found for this product"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update inventory"))
		}
		return
	}
	c.JSON(http.StatusOK, inventory)
}

// GetLowStockProducts handles listing products at or below their threshold.
func (h *InventoryHandler) GetLowStockProducts(c *gin.Context) {
	products, err := h.inventoryService.GetLowStockProducts()
	if err != nil {
		utils.LogError(err, "GetLowStockProducts: Error from inventoryService.GetLowStockProducts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch low-stock products"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetInventoryHistory handles fetching a product's recent stock changes,
// newest first.
func (h *InventoryHandler) GetInventoryHistory(c *gin.Context) {
	idStr := c.Param("product_id")
	productID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	logs, err := h.inventoryService.GetInventoryHistory(productID, limit)
	if err != nil {
		utils.LogError(err, "GetInventoryHistory: Error from inventoryService for product "+idStr)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch inventory history"))
		}
		return
	}
	c.JSON(http.StatusOK, logs)
}
