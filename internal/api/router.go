package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gramin/internal/api/handler"
	"gramin/internal/api/middleware"
	"gramin/internal/config"
	"gramin/internal/service"
)

// Router sets up all API routes
func Router(cfg *config.Config, assistant handler.Answerer, places service.NearbyFinder) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Apply middlewares
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	assistantHandler := handler.NewAssistantHandler(assistant)
	nearbyHandler := handler.NewNearbyHandler(places)

	// Health check
	router.GET("/", healthHandler.Welcome)
	router.GET("/health", healthHandler.Check)

	// Assistant routes
	router.POST("/ask-rural-assistant/", assistantHandler.Ask)
	router.POST("/nearby-health-centers/", nearbyHandler.Find)

	// API docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
