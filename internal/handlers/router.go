package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scan-track/fridge-service/internal/database"
	"github.com/scan-track/fridge-service/internal/middleware"
	"github.com/scan-track/fridge-service/internal/service"
	"github.com/scan-track/fridge-service/pkg/metrics"
)

// RouterConfig contains configuration for setting up routes
type RouterConfig struct {
	InventoryService service.InventoryService
	LookupService    service.LookupService
	Reminder         ReminderRunner
	ReminderSecret   string
	Postgres         *database.PostgresDB
	Redis            *database.RedisDB
	Logger           *slog.Logger
	Metrics          *metrics.Metrics
}

// SetupPublicRoutes configures the public API router
func SetupPublicRoutes(router *gin.Engine, config *RouterConfig) {
	inventoryHandler := NewInventoryHandler(config.InventoryService, config.LookupService, config.Logger)
	loggingMiddleware := middleware.NewLoggingMiddleware(config.Logger)

	router.Use(gin.Recovery())
	router.Use(loggingMiddleware.LogRequests())
	router.Use(middleware.MetricsMiddleware(config.Metrics))

	api := router.Group("/api")
	{
		api.GET("/product", inventoryHandler.LookupProduct)

		api.GET("/items", inventoryHandler.GetItems)
		api.POST("/items", inventoryHandler.CreateItem)
		api.PATCH("/items/:id", inventoryHandler.UpdateItem)
		api.DELETE("/items/:id", inventoryHandler.DeleteItem)

		api.GET("/refrigerators", inventoryHandler.ListRefrigerators)
		api.POST("/refrigerators", inventoryHandler.CreateRefrigerator)
	}
}

// SetupInternalRoutes configures the network-isolated internal router
func SetupInternalRoutes(router *gin.Engine, config *RouterConfig) {
	healthHandler := NewHealthHandler(config.Logger, config.Postgres, config.Redis)
	reminderHandler := NewReminderHandler(config.Reminder, config.Logger)
	cronAuth := middleware.NewCronAuthMiddleware(config.ReminderSecret, config.Logger)
	loggingMiddleware := middleware.NewLoggingMiddleware(config.Logger)

	router.Use(gin.Recovery())
	router.Use(loggingMiddleware.LogRequests())

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/api/reminders/run", cronAuth.Authenticate(), reminderHandler.Run)
}
