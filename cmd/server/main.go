package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/wellness-service/internal/cache"
	"github.com/SAP-F-2025/wellness-service/internal/config"
	"github.com/SAP-F-2025/wellness-service/internal/handlers"
	"github.com/SAP-F-2025/wellness-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/wellness-service/internal/services"
	"github.com/SAP-F-2025/wellness-service/internal/utils"
	"github.com/SAP-F-2025/wellness-service/internal/validator"
	"github.com/SAP-F-2025/wellness-service/pkg"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Database connection established and migrations completed")

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	publisher, err := cfg.Events.CreateEventPublisher(logger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	cacheService := cache.NewRedisCache(redisClient, logger)
	v := validator.New()

	serviceManager := services.NewServiceManager(repo, cacheService, publisher, v, logger, services.ManagerConfig{
		WindowDays:          cfg.UsageWindowDays,
		WindowIncludesToday: cfg.UsageWindowIncludesToday,
		CacheTTL:            time.Duration(cfg.CacheTTLMinutes) * time.Minute,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handlerLogger := utils.NewSlogLogger(logger)
	router.Use(utils.LoggerMiddleware(handlerLogger))

	handlerManager := handlers.NewHandlerManager(serviceManager, handlerLogger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting wellness service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
