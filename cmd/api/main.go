// ABOUTME: Main entry point for the Opportunities Portal API server
// ABOUTME: Loads configuration, wires the application and serves HTTP until interrupted

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opportunities-portal-api/infrastructure/logger"
	"opportunities-portal-api/internal/app"
	"opportunities-portal-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	appLogger, err := logger.New(logger.Config{
		Backend:    cfg.Log.Backend,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	if syncer, ok := appLogger.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}

	appLogger.Info("Starting Opportunities Portal API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"backend_url": cfg.Backend.URL,
		"cache_type":  cfg.Cache.Type,
		"log_backend": cfg.Log.Backend,
	})

	application, err := app.New(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			appLogger.Error("Failed to close application", map[string]interface{}{"error": err.Error()})
		}
	}()

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      application.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout()*2 + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
   ____                        __              _ __  _
  / __ \____  ____  ____  _____/ /___  ______  (_) /_(_)__  _____
 / / / / __ \/ __ \/ __ \/ ___/ __/ / / / __ \/ / __/ / _ \/ ___/
/ /_/ / /_/ / /_/ / /_/ / /  / /_/ /_/ / / / / / /_/ /  __(__  )
\____/ .___/ .___/\____/_/   \__/\__,_/_/ /_/_/\__/_/\___/____/
    /_/   /_/
	`)
}
