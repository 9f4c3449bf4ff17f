package router

import (
	"ecommerce_admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCategoryRoutes registers category endpoints.
func SetupCategoryRoutes(api *gin.RouterGroup, h *handlers.CategoryHandler) {
	categories := api.Group("/categories")
	{
		categories.POST("/", h.CreateCategory)
		categories.GET("/", h.GetCategories)
		categories.GET("/:id", h.GetCategoryByID)
	}
}

// SetupProductRoutes registers product endpoints.
func SetupProductRoutes(api *gin.RouterGroup, h *handlers.ProductHandler) {
	products := api.Group("/products")
	{
		products.POST("/", h.CreateProduct)
		products.GET("/", h.GetProducts)
		products.GET("/:id", h.GetProductByID)
	}
}

// SetupInventoryRoutes registers inventory endpoints.
func SetupInventoryRoutes(api *gin.RouterGroup, h *handlers.InventoryHandler) {
	inventory := api.Group("/inventory")
	{
		inventory.POST("/", h.CreateInventory)
		inventory.GET("/", h.GetAllInventory)
		inventory.GET("/low-stock/", h.GetLowStockProducts)
		inventory.GET("/history/:product_id", h.GetInventoryHistory)
		inventory.GET("/:product_id", h.GetInventoryByProductID)
		inventory.PUT("/:product_id", h.UpdateInventory)
	}
}

// SetupSaleRoutes registers sale endpoints.
func SetupSaleRoutes(api *gin.RouterGroup, h *handlers.SaleHandler) {
	sales := api.Group("/sales")
	{
		sales.POST("/", h.CreateSale)
		sales.GET("/", h.GetSales)
		sales.GET("/:id", h.GetSaleByID)
	}
}

// SetupAnalyticsRoutes registers analytics endpoints.
func SetupAnalyticsRoutes(api *gin.RouterGroup, h *handlers.AnalyticsHandler) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("/sales/", h.GetSalesSummary)
		analytics.GET("/revenue/:period", h.GetRevenue)
		analytics.POST("/product-sales/", h.GetProductSales)
	}
}
