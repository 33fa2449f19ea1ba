// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"artstudio-booking/cmd"
	"artstudio-booking/internal/data/repository"
	"artstudio-booking/internal/wire"
	"artstudio-booking/pkg/cache"
	"artstudio-booking/pkg/database"
	"artstudio-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("timezone", config.App.BusinessTimezone),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis is optional; without it availability is read from the database
	// on every request and Idempotency-Key replay is off.
	var rdb *redis.Client
	if config.Redis.Addr != "" {
		rdb, err = cache.NewRedisClient(config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
			logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
		}
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, rdb, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}

	// Let queued confirmations finish before closing their clients.
	drainCtx, cancel := context.WithTimeout(context.Background(), config.App.ShutdownTimeout)
	defer cancel()
	if err := app.Dispatcher.Wait(drainCtx); err != nil {
		logger.Warn("Pending confirmations abandoned at shutdown", zap.Error(err))
	}
	if err := app.Close(); err != nil {
		logger.Warn("Failed to close outbound clients", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
