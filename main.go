package main

import (
	"log"
	"os"

	"blogspace-api/config"
	"blogspace-api/database"
	"blogspace-api/middleware"
	"blogspace-api/routes"
	"blogspace-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with sample data (development only)
	if os.Getenv("SEED_DATA") == "true" {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Email notifications (optional)
	emailService := services.NewEmailService(cfg)
	if !emailService.Enabled() {
		log.Println("SMTP not configured, comment notifications disabled")
	}

	if cfg.Port != "8080" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.LoadHTMLGlob("templates/*")

	routes.SetupRoutes(router, db, cfg, emailService)

	log.Printf("Starting Blogspace API server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
