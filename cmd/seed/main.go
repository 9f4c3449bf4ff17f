package main

import (
	"fmt"
	"math/rand"
	"time"

	"ecommerce_admin_backend/internal/database"
	"ecommerce_admin_backend/internal/repositories"
	"ecommerce_admin_backend/internal/services"
	"ecommerce_admin_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// seedProduct describes one demo product to create.
type seedProduct struct {
	name      string
	category  string
	price     float64
	quantity  int
	threshold int
}

var seedCategories = []struct {
	name        string
	description string
}{
	{"Electronics", "Phones, tablets, and accessories"},
	{"Home & Kitchen", "Appliances and kitchenware"},
	{"Clothing", "Apparel for all seasons"},
	{"Sports & Outdoors", "Gear for sports and outdoor activities"},
	{"Books", "Print books across genres"},
}

var seedProducts = []seedProduct{
	{"Wireless Earbuds", "Electronics", 59.99, 120, 20},
	{"Smartphone Stand", "Electronics", 14.99, 200, 30},
	{"USB-C Charging Cable", "Electronics", 9.99, 350, 50},
	{"Bluetooth Speaker", "Electronics", 39.99, 80, 15},
	{"Fitness Tracker", "Electronics", 79.99, 60, 10},
	{"Air Fryer", "Home & Kitchen", 89.99, 45, 10},
	{"Chef Knife Set", "Home & Kitchen", 49.99, 70, 12},
	{"Coffee Grinder", "Home & Kitchen", 34.99, 55, 10},
	{"Non-stick Pan", "Home & Kitchen", 24.99, 90, 15},
	{"Electric Kettle", "Home & Kitchen", 29.99, 65, 10},
	{"Cotton T-Shirt", "Clothing", 12.99, 300, 40},
	{"Denim Jeans", "Clothing", 44.99, 150, 25},
	{"Hooded Sweatshirt", "Clothing", 34.99, 110, 20},
	{"Running Socks 3-Pack", "Clothing", 11.99, 250, 35},
	{"Rain Jacket", "Clothing", 64.99, 75, 12},
	{"Yoga Mat", "Sports & Outdoors", 22.99, 130, 20},
	{"Resistance Bands", "Sports & Outdoors", 15.99, 180, 25},
	{"Camping Lantern", "Sports & Outdoors", 19.99, 85, 15},
	{"Water Bottle 1L", "Sports & Outdoors", 13.99, 220, 30},
	{"Trekking Poles", "Sports & Outdoors", 42.99, 50, 8},
	{"Mystery Novel", "Books", 16.99, 140, 20},
	{"Cookbook", "Books", 27.99, 95, 15},
	{"Science Fiction Anthology", "Books", 21.99, 105, 15},
	{"Children's Picture Book", "Books", 10.99, 160, 25},
	{"Business Strategy Guide", "Books", 31.99, 70, 10},
}

var marketplaces = []string{"Amazon", "eBay", "Etsy", "Walmart", "Shopify"}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}
	utils.InitLogger()

	cfg := database.Config{
		Host:     utils.Getenv("DB_HOST", "localhost"),
		Port:     utils.Getenv("DB_PORT", "5432"),
		User:     utils.Getenv("DB_USER", "postgres"),
		Password: utils.Getenv("DB_PASSWORD", "postgres"),
		DBName:   utils.Getenv("DB_NAME", "ecommerce_admin"),
		SSLMode:  utils.Getenv("DB_SSLMODE", "disable"),
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(db, utils.Getenv("MIGRATIONS_PATH", "migrations")); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	txBeginner := repositories.NewTxBeginner(db)

	categoryService := services.NewCategoryService(categoryRepo, db)
	productService := services.NewProductService(productRepo, categoryRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, productRepo, txBeginner)
	saleService := services.NewSaleService(saleRepo, inventoryRepo, txBeginner)

	categoryIDs := make(map[string]int64)
	for _, sc := range seedCategories {
		desc := sc.description
		category, err := categoryService.CreateCategory(services.CreateCategoryRequest{
			Name:        sc.name,
			Description: &desc,
		})
		if err != nil {
			log.Fatal().Err(err).Str("category", sc.name).Msg("Failed to create category")
		}
		categoryIDs[sc.name] = category.ID
	}
	log.Info().Int("count", len(categoryIDs)).Msg("Categories created")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	type stocked struct {
		productID int64
		price     float64
		remaining int
	}
	var catalog []stocked
	for i, sp := range seedProducts {
		desc := fmt.Sprintf("%s from the %s range", sp.name, sp.category)
		product, err := productService.CreateProduct(services.CreateProductRequest{
			Name:        sp.name,
			Description: &desc,
			Price:       sp.price,
			SKU:         fmt.Sprintf("SKU-%04d", i+1),
			CategoryID:  categoryIDs[sp.category],
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", sp.name).Msg("Failed to create product")
		}
		if _, err := inventoryService.CreateInventory(services.CreateInventoryRequest{
			ProductID:         product.ID,
			Quantity:          sp.quantity,
			LowStockThreshold: sp.threshold,
		}); err != nil {
			log.Fatal().Err(err).Str("product", sp.name).Msg("Failed to create inventory")
		}
		catalog = append(catalog, stocked{productID: product.ID, price: sp.price, remaining: sp.quantity})
	}
	log.Info().Int("count", len(catalog)).Msg("Products and inventory created")

	// Roughly a month of sales history, a few orders per day, each with
	// one to three lines. Going through the sale service keeps the stock
	// ledger consistent with the generated orders.
	saleCount := 0
	for daysAgo := 30; daysAgo >= 0; daysAgo-- {
		orders := 1 + rng.Intn(4)
		for o := 0; o < orders; o++ {
			lines := 1 + rng.Intn(3)
			var items []services.CreateSaleItemRequest
			total := 0.0
			used := make(map[int64]bool)
			for l := 0; l < lines; l++ {
				p := &catalog[rng.Intn(len(catalog))]
				if used[p.productID] || p.remaining < 5 {
					continue
				}
				used[p.productID] = true
				qty := 1 + rng.Intn(3)
				subtotal := float64(qty) * p.price
				items = append(items, services.CreateSaleItemRequest{
					ProductID: p.productID,
					Quantity:  qty,
					UnitPrice: p.price,
					Subtotal:  subtotal,
				})
				total += subtotal
				p.remaining -= qty
			}
			if len(items) == 0 {
				continue
			}
			sale, err := saleService.CreateSale(services.CreateSaleRequest{
				OrderID:     "ORD-" + uuid.NewString(),
				TotalAmount: total,
				Marketplace: marketplaces[rng.Intn(len(marketplaces))],
				Items:       items,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create sale")
			}

			// Backdate the sale so the analytics endpoints have a month
			// of history to aggregate.
			when := time.Now().AddDate(0, 0, -daysAgo).
				Add(-time.Duration(rng.Intn(12)) * time.Hour)
			if _, err := db.Exec(`UPDATE sales SET transaction_date = $1 WHERE id = $2`, when, sale.ID); err != nil {
				log.Fatal().Err(err).Msg("Failed to backdate sale")
			}
			saleCount++
		}
	}
	log.Info().Int("count", saleCount).Msg("Sales created")
	log.Info().Msg("Seed data loaded")
}
