package main

import (
	"net/http"
	"strings"

	"ecommerce_admin_backend/internal/database"
	"ecommerce_admin_backend/internal/middleware"
	"ecommerce_admin_backend/internal/router"
	"ecommerce_admin_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real deployments set the environment directly.
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
	log.Info().Str("host", cfg.Host).Str("dbname", cfg.DBName).Msg("Connected to database")

	migrationsPath := utils.Getenv("MIGRATIONS_PATH", "migrations")
	if err := database.RunMigrations(db, migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Msg("Database schema is up to date")

	if utils.Getenv("GIN_MODE", "") == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())
	engine.Use(middleware.Metrics())
	engine.Use(cors.New(buildCORSConfig(utils.Getenv("CORS_ALLOWED_ORIGINS", ""))))

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "E-commerce Admin API"})
	})
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.SetupRouter(engine, db)

	port := utils.Getenv("PORT", "8000")
	log.Info().Str("port", port).Msg("Starting server")
	if err := engine.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// buildCORSConfig allows every origin unless allowedOrigins narrows it
// to a comma-separated list.
func buildCORSConfig(allowedOrigins string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
	}
	for _, origin := range strings.Split(allowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
