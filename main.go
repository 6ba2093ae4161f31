// @title Rural Healthcare Assistant API
// @version 1.0
// @description Hindi-language health assistant for rural users with nearby hospital suggestions
// @basePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "gramin/docs"
	"gramin/internal/api"
	"gramin/internal/client"
	"gramin/internal/config"
	"gramin/internal/service"
	"gramin/internal/util"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	util.SetupLogging(cfg.LogLevel, cfg.Env)
	logger := util.NewLogger("Main")
	logger.Info("Starting Rural Healthcare Assistant on port %d", cfg.Port)

	// Initialize geodata lookup
	overpassClient := client.NewOverpassClient(cfg)
	placesService := service.NewPlacesService(cfg, overpassClient)

	// Initialize LLM completion
	completionService := service.NewCompletionService(cfg)
	assistantService := service.NewAssistantService(cfg, completionService, placesService)

	// Setup router
	router := api.Router(cfg, assistantService, placesService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", err)
			os.Exit(1)
		}
	}()

	logger.Success(fmt.Sprintf("Server running on %s", srv.Addr))

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", err)
	}
}
