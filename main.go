package main

import (
	"fmt"
	"log"

	"techstock-backend/config"
	"techstock-backend/controllers"
	"techstock-backend/migrations"
	"techstock-backend/routes"
)

func main() {
	log.Println("🚀 Starting TechStock Backend Service...")

	// Load configuration
	log.Println("📝 Loading configuration...")
	cfg := config.LoadConfig()
	log.Println("✓ Configuration loaded successfully")

	// Connect to database with retry logic
	log.Println("🔌 Connecting to database...")
	config.ConnectDatabase(cfg)

	// Run migrations and seed reference data
	log.Println("🔄 Running database migrations...")
	db := config.GetDB()
	migrations.AutoMigrate(db)

	// Initialize controllers
	log.Println("🎮 Initializing controllers...")
	authController := controllers.NewAuthController(db, cfg)
	userManagerController := controllers.NewUserManagerController(db)
	productController := controllers.NewProductController(db)
	typeArticleController := controllers.NewTypeArticleController(db)
	supplierController := controllers.NewSupplierController(db)
	stateController := controllers.NewStateController(db)
	materialController := controllers.NewMaterialController(db)
	statisticsController := controllers.NewStatisticsController(db)
	translationController := controllers.NewTranslationController(cfg)
	log.Println("✓ Controllers initialized successfully")

	// Setup routes
	log.Println("🛣️  Setting up routes...")
	router := routes.SetupRoutes(cfg, authController, userManagerController, productController, typeArticleController, supplierController, stateController, materialController, statisticsController, translationController)
	log.Println("✓ Routes configured successfully")

	// Build API URL from config
	apiURL := fmt.Sprintf("http://%s:%s", cfg.APIHost, cfg.Port)

	// Start server
	log.Println("════════════════════════════════════════════════════════════")
	log.Printf("✓ Server ready on port %s", cfg.Port)
	log.Printf("📊 Health check: %s/health", apiURL)
	log.Println("════════════════════════════════════════════════════════════")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
