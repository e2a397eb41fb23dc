package main

import (
	"log"
	"time"

	"retail_admin/internal/config"
	"retail_admin/internal/database"
	"retail_admin/internal/events"
	"retail_admin/internal/handlers"
	"retail_admin/internal/providers"
	"retail_admin/internal/redis"
	"retail_admin/internal/repository"
	"retail_admin/internal/router"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis. The server stays up without it; caching and event
	// mirroring just switch off.
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	// Event bus, mirrored to Redis pub/sub when available
	var mirror events.Publisher
	if redisClient != nil {
		mirror = redisClient
	}
	bus := events.NewBus(events.DbChannel, mirror)
	bus.Subscribe(func(e events.Event) {
		log.Printf("event: %s", e.Topic())
	})

	// Initialize providers
	userProvider := providers.NewUserProvider(db)
	workerProvider := providers.NewWorkerProvider(db)
	authProvider := providers.NewAuthProvider(
		cfg.JWTSecret,
		cfg.RefreshTokenSecret,
		time.Duration(cfg.AccessTokenTTL)*time.Second,
		time.Duration(cfg.RefreshTokenTTL)*time.Second,
	)
	accountProvider := providers.NewRetailerAccountProvider(db)
	orderProvider := providers.NewRetailerOrderProvider(db)
	orderItemProvider := providers.NewRetailerOrderItemProvider(db)
	detailsProvider := providers.NewProductDetailsProvider(db)
	productProvider := providers.NewProductProvider(db)
	categoryProvider := providers.NewProductCategoryProvider(db)
	imageProvider := providers.NewProductImageProvider(db)
	colorProvider := providers.NewProductColorProvider(db)
	sizeProvider := providers.NewProductSizeProvider(db)
	adminInventoryProvider := providers.NewAdminInventoryProvider(db)
	retailerInventoryProvider := providers.NewRetailerInventoryProvider(db)
	attendanceProvider := providers.NewAttendanceProvider(db)

	// Initialize repositories
	userRepo := repository.NewUserRepository(userProvider, bus)
	workerRepo := repository.NewWorkerRepository(workerProvider, bus)
	authRepo := repository.NewAuthRepository(userProvider, authProvider, bus)
	accountRepo := repository.NewRetailerAccountRepository(accountProvider, bus)
	orderRepo := repository.NewRetailerOrderRepository(orderProvider, orderItemProvider, bus)
	orderItemRepo := repository.NewRetailerOrderItemRepository(orderItemProvider, bus)
	detailsRepo := repository.NewProductDetailsRepository(detailsProvider, bus)
	productRepo := repository.NewProductRepository(productProvider, detailsProvider, bus)
	categoryRepo := repository.NewProductCategoryRepository(categoryProvider, bus)
	imageRepo := repository.NewProductImageRepository(imageProvider, bus)
	colorRepo := repository.NewProductColorRepository(colorProvider, bus)
	sizeRepo := repository.NewProductSizeRepository(sizeProvider, bus)
	adminInventoryRepo := repository.NewAdminInventoryRepository(adminInventoryProvider, bus)
	retailerInventoryRepo := repository.NewRetailerInventoryRepository(retailerInventoryProvider, bus)
	attendanceRepo := repository.NewAttendanceRepository(attendanceProvider, bus)

	// Initialize handlers
	secureCookies := cfg.Env == "production"
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	deps := router.Deps{
		Auth:         handlers.NewAuthHandler(authRepo, cfg.AccessTokenTTL, secureCookies),
		Users:        handlers.NewUserHandler(userRepo, workerRepo),
		Retailers:    handlers.NewRetailerHandler(userRepo, accountRepo),
		Products:     handlers.NewProductHandler(productRepo, detailsRepo, redisClient, cacheTTL),
		Catalog:      handlers.NewCatalogHandler(categoryRepo, imageRepo, colorRepo, sizeRepo),
		Inventory:    handlers.NewInventoryHandler(adminInventoryRepo, retailerInventoryRepo),
		Orders:       handlers.NewOrderHandler(orderRepo, orderItemRepo),
		Attendance:   handlers.NewAttendanceHandler(attendanceRepo),
		Docs:         handlers.NewDocsHandler(),
		AuthProvider: authProvider,
	}

	e := router.New(deps)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
