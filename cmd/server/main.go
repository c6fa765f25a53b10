package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shoplite/storeapi/internal/handler"
	"github.com/shoplite/storeapi/internal/middleware"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/repository"
	"github.com/shoplite/storeapi/internal/service"
	"github.com/shoplite/storeapi/internal/validator"
	"github.com/shoplite/storeapi/pkg/cache"
	"github.com/shoplite/storeapi/pkg/config"
	"github.com/shoplite/storeapi/pkg/database"
	"github.com/shoplite/storeapi/pkg/jwtutil"
	"github.com/shoplite/storeapi/pkg/logger"
	"github.com/shoplite/storeapi/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("storeapi")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storeapi", appConfig.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.Category{},
		&model.Product{},
		&model.User{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations applied")

	// Initialize JWT utility
	jwtUtil := jwtutil.NewJWTUtil(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Optional Redis product cache
	var productCache service.ProductCache
	if appConfig.Redis.Enabled {
		client, err := cache.NewClient(context.Background(), &appConfig.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		productCache = cache.NewProductCache(client, appConfig.Redis.CacheTTL)
		log.Info("Redis product cache enabled",
			zap.String("addr", appConfig.Redis.Addr()),
			zap.Duration("ttl", appConfig.Redis.CacheTTL))
	}

	// Repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	productService := service.NewProductService(productRepo, productCache)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	authService := service.NewAuthService(userRepo, jwtUtil)

	// Handlers
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	orderHandler := handler.NewOrderHandler(orderService)
	authHandler := handler.NewAuthHandler(authService)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Middleware
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)
	if appConfig.RateLimit.Enabled {
		e.Use(middleware.RateLimitMiddleware(&appConfig.RateLimit))
	}

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Auth routes
	authAPI := e.Group("/api/auth")
	authAPI.POST("/register", authHandler.Register)
	authAPI.POST("/login", authHandler.Login)

	auth := middleware.JWTAuthMiddleware(jwtUtil)
	authAPI.GET("/me", authHandler.Me, auth)
	authAPI.PUT("/password", authHandler.ChangePassword, auth)

	// Product API routes - reads for any authenticated user, mutations admin-only
	productAPI := e.Group("/api/products", auth)
	productAPI.GET("", productHandler.List)
	productAPI.GET("/active", productHandler.Active)
	productAPI.GET("/low-stock", productHandler.LowStock)
	productAPI.GET("/search", productHandler.Search)
	productAPI.GET("/price-range", productHandler.PriceRange)
	productAPI.GET("/statistics", productHandler.Statistics)
	productAPI.GET("/sku/:sku", productHandler.GetBySKU)
	productAPI.GET("/category/:id", productHandler.ByCategory)
	productAPI.GET("/:id", productHandler.Get)
	productAPI.POST("", productHandler.Create, middleware.RequireAdmin)
	productAPI.PUT("/:id", productHandler.Update, middleware.RequireAdmin)
	productAPI.DELETE("/:id", productHandler.Delete, middleware.RequireAdmin)
	productAPI.PATCH("/:id/stock", productHandler.AdjustStock, middleware.RequireAdmin)

	// Category API routes
	categoryAPI := e.Group("/api/categories", auth)
	categoryAPI.GET("", categoryHandler.List)
	categoryAPI.GET("/name/:name", categoryHandler.GetByName)
	categoryAPI.GET("/:id", categoryHandler.Get)
	categoryAPI.POST("", categoryHandler.Create, middleware.RequireAdmin)
	categoryAPI.PUT("/:id", categoryHandler.Update, middleware.RequireAdmin)
	categoryAPI.DELETE("/:id", categoryHandler.Delete, middleware.RequireAdmin)

	// Order API routes
	orderAPI := e.Group("/api/orders", auth)
	orderAPI.GET("", orderHandler.List)
	orderAPI.GET("/number/:number", orderHandler.GetByNumber)
	orderAPI.GET("/status/:status", orderHandler.ByStatus)
	orderAPI.GET("/user/:id", orderHandler.ByUser)
	orderAPI.GET("/:id", orderHandler.Get)
	orderAPI.POST("", orderHandler.Create)
	orderAPI.PATCH("/:id/status", orderHandler.UpdateStatus, middleware.RequireAdmin)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
