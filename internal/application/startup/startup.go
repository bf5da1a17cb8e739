// Package startup prepares the application server.
package startup

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/container"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/presentation/http/server"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// Initialize runs the full startup sequence: build the container, load the
// level configuration and warm the default level's home cache concurrently,
// start the HTTP server, and block until a shutdown signal drains it.
func Initialize() error {
	setupGinMode()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Startup().Info("Portal starting")

	appContainer, err := container.New(logger)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	logger.Startup().Info("Dependency container ready")

	// The authoritative level configuration and the default level's home
	// cache load concurrently. Neither blocks serving: the baked-in mapping
	// answers until the config lands, and a cold home bucket just means the
	// first visitor pays the fetch.
	defaultLevel := appContainer.LevelStore.Validate(config.DefaultJenjang)
	var warmup sync.WaitGroup
	warmup.Add(2)
	go func() {
		defer warmup.Done()
		if err := appContainer.LevelStore.Load(ctx); err != nil {
			logger.Startup().Warn("Level configuration load failed, serving default mapping", "error", err.Error())
		}
	}()
	go func() {
		defer warmup.Done()
		appContainer.HomeService.Warm(ctx, defaultLevel)
	}()

	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	warmup.Wait()
	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"defaultJenjang", string(defaultLevel),
		"port", config.Port)

	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown")

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	}

	if err := appContainer.Close(); err != nil {
		logger.Shutdown().Error("Error closing container", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

func setupGinMode() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
}
