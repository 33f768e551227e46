package main

import (
	"os"

	_ "pos-backend/api/swagger" // swagger docs
	"pos-backend/internal/database"
	"pos-backend/internal/handler"
	"pos-backend/internal/middleware"
	"pos-backend/internal/repository"
	"pos-backend/internal/service"
	"pos-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// @title           Island Tea POS API
// @version         1.0
// @description     Point-of-sale backend for a tea shop: products, recipes, recipe-based inventory consumption, sales and reports.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load("configs/.env"); err != nil {
		logger.Info("No configs/.env file found, using environment")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "pos")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn, logger)
	if err != nil {
		logger.WithError(err).Fatal("Database connection failed")
	}
	logger.Info("Connected to PostgreSQL")

	if err := database.SeedDemoUsers(db, logger); err != nil {
		logger.WithError(err).Fatal("Seeding demo users failed")
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(logger)
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	adjustmentRepo := repository.NewAdjustmentRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	userService := service.NewUserService(userRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, adjustmentRepo, wsHub, logger)
	recipeService := service.NewRecipeService(recipeRepo, inventoryRepo)
	productService := service.NewProductService(productRepo, recipeService, wsHub, logger)
	saleService := service.NewSaleService(saleRepo, recipeRepo, inventoryRepo, adjustmentRepo, txManager, wsHub, logger)
	reportService := service.NewReportService(db)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	reportHandler := handler.NewReportHandler(reportService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	api := router.Group("")
	userHandler.RegisterRoutes(api)
	inventoryHandler.RegisterRoutes(api)
	recipeHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	saleHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)

	port := envOr("PORT", "8080")
	logger.WithField("port", port).Info("Server listening")
	if err := router.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}
