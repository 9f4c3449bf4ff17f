package router

import (
	"database/sql"

	"ecommerce_admin_backend/internal/handlers"
	"ecommerce_admin_backend/internal/repositories"
	"ecommerce_admin_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires repositories, services and handlers onto the engine
// under the /api/v1 prefix.
func SetupRouter(engine *gin.Engine, db *sql.DB) {
	// Repositories
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	txBeginner := repositories.NewTxBeginner(db)

	// Services
	categoryService := services.NewCategoryService(categoryRepo, db)
	productService := services.NewProductService(productRepo, categoryRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, productRepo, txBeginner)
	saleService := services.NewSaleService(saleRepo, inventoryRepo, txBeginner)
	analyticsService := services.NewAnalyticsService(analyticsRepo)

	// Handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	saleHandler := handlers.NewSaleHandler(saleService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	api := engine.Group("/api/v1")
	{
		SetupCategoryRoutes(api, categoryHandler)
		SetupProductRoutes(api, productHandler)
		SetupInventoryRoutes(api, inventoryHandler)
		SetupSaleRoutes(api, saleHandler)
		SetupAnalyticsRoutes(api, analyticsHandler)
	}
}
