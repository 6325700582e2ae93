package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mantonx/streambase/internal/config"
	"github.com/mantonx/streambase/internal/database"
	"github.com/mantonx/streambase/internal/logger"
	"github.com/mantonx/streambase/internal/server"
)

func main() {
	fmt.Println("=====================================")
	fmt.Println("  Streambase Content Catalog Server  ")
	fmt.Println("=====================================")

	// .env is optional, used for local development
	if err := godotenv.Load(); err == nil {
		logger.Info("Environment loaded from .env")
	}

	configPath := os.Getenv("STREAMBASE_CONFIG_PATH")
	if configPath == "" {
		if _, err := os.Stat("./streambase.yaml"); err == nil {
			configPath = "./streambase.yaml"
		}
	}

	if err := config.Load(configPath); err != nil {
		logger.Warn("Failed to load configuration, using defaults",
			logger.String("path", configPath),
			logger.Err("error", err))
	} else if configPath != "" {
		logger.Info("Configuration loaded", logger.String("path", configPath))
	} else {
		logger.Info("Using default configuration")
	}

	if configPath != "" {
		if watcher, err := config.NewWatcher(configPath); err != nil {
			logger.Warn("Config watcher unavailable", logger.Err("error", err))
		} else {
			watcher.OnReload(func(cfg *config.Config) {
				logger.Info("Configuration reloaded", logger.String("path", configPath))
			})
			watcher.Start()
			defer watcher.Stop()
		}
	}

	cfg := config.Get()

	if err := database.Initialize(&cfg.Database); err != nil {
		logger.Error("Failed to initialize database", logger.Err("error", err))
		os.Exit(1)
	}

	r, err := server.SetupRouter()
	if err != nil {
		logger.Error("Failed to set up server", logger.Err("error", err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", logger.Err("error", err))
		}

		server.Shutdown()
	}()

	logger.Info("Server starting", logger.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", logger.Err("error", err))
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
