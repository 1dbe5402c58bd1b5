package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/scan-track/fridge-service/internal/config"
	"github.com/scan-track/fridge-service/internal/database"
	"github.com/scan-track/fridge-service/internal/handlers"
	"github.com/scan-track/fridge-service/internal/jobs"
	"github.com/scan-track/fridge-service/internal/openfoodfacts"
	"github.com/scan-track/fridge-service/internal/repository"
	"github.com/scan-track/fridge-service/internal/service"
	"github.com/scan-track/fridge-service/pkg/logger"
	"github.com/scan-track/fridge-service/pkg/metrics"
)

func main() {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting fridge-service", "config", cfg.String())

	metricsCollector := metrics.New()
	metricsCollector.Initialize()
	defer metricsCollector.Shutdown()

	gin.SetMode(gin.ReleaseMode)

	postgres, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DatabaseMaxConns, log, metricsCollector)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer postgres.Close()

	redis, err := database.NewRedisDB(cfg.RedisURL, cfg.RedisMaxConns, log, metricsCollector)
	if err != nil {
		log.Error("Failed to initialize Redis", "error", err)
		os.Exit(1)
	}
	defer redis.Close()

	// Wire repositories, cache and services
	repos := repository.NewRepositories(postgres.DB())
	cache := service.NewRedisCache(redis)
	serviceMetrics := metrics.NewServiceMetrics(metricsCollector)

	offClient := openfoodfacts.NewClient(cfg.ProductLookupURL, cfg.ProductSearchURL, log)

	inventoryService := service.NewInventoryService(repos.Items, repos.Refrigerators, cache, log, serviceMetrics)
	lookupService := service.NewLookupService(offClient, cache, cfg.LookupCacheTTL, log, serviceMetrics)

	// Expiration reminder job: periodic sweep plus an internal trigger
	// endpoint for external schedulers
	reminder := jobs.NewExpiryReminder(
		repos.Items,
		jobs.NewLogNotifier(log),
		cfg.ReminderInterval,
		log,
		serviceMetrics,
	)
	reminder.Start()
	defer reminder.Stop()

	routerConfig := &handlers.RouterConfig{
		InventoryService: inventoryService,
		LookupService:    lookupService,
		Reminder:         reminder,
		ReminderSecret:   cfg.ReminderSecret,
		Postgres:         postgres,
		Redis:            redis,
		Logger:           log,
		Metrics:          metricsCollector,
	}

	publicRouter := gin.New()
	handlers.SetupPublicRoutes(publicRouter, routerConfig)

	internalRouter := gin.New()
	handlers.SetupInternalRoutes(internalRouter, routerConfig)

	publicServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServiceHost, cfg.ServicePort),
		Handler:      publicRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	internalServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServiceHost, cfg.InternalServicePort),
		Handler:      internalRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Periodic dependency health refresh
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			postgresHealthy := postgres.Health(ctx) == nil
			redisHealthy := redis.Health(ctx) == nil
			metricsCollector.UpdateDependencyHealth("postgres", postgresHealthy)
			metricsCollector.UpdateDependencyHealth("redis", redisHealthy)

			cancel()
		}
	}()

	go func() {
		log.Info("Public server starting", "address", publicServer.Addr)
		if err := publicServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Public server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		log.Info("Internal server starting", "address", internalServer.Addr)
		if err := internalServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Internal server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	go func() {
		if err := publicServer.Shutdown(ctx); err != nil {
			log.Error("Public server forced to shutdown", "error", err)
		}
	}()

	if err := internalServer.Shutdown(ctx); err != nil {
		log.Error("Internal server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
