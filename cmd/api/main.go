package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shelfsmart/internal/config"
	"shelfsmart/internal/database"
	"shelfsmart/internal/logger"
	"shelfsmart/internal/notify"
	"shelfsmart/internal/repository"
	"shelfsmart/internal/server"
	"shelfsmart/internal/worker"

	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, alertWorker *worker.AlertWorker, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	alertWorker.Stop()

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting shelfsmart API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	// Initialize database
	dbService, err := database.New(cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	db := dbService.DB()

	// Check database health
	health := dbService.Health()
	log.Info("Database health check", zap.Any("health", health))

	// Run migrations
	if err := database.GetMigrationStatus(db, "migrations", log); err != nil {
		log.Warn("Failed to read migration status", zap.Error(err))
	}
	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully")

	// Alert notifications go to Telegram when a bot token is configured,
	// otherwise to the log.
	var notifier notify.Notifier
	if cfg.Telegram.BotToken != "" {
		telegramNotifier, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Error("Failed to initialize telegram notifier, falling back to log", zap.Error(err))
			notifier = notify.NewLogNotifier(log)
		} else {
			notifier = telegramNotifier
		}
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	// Start the background alert check
	productRepo := repository.NewProductRepository(db)
	alertWorker := worker.New(productRepo, notifier, worker.Config{
		Interval:          cfg.Alerts.CheckInterval,
		NotifyWindowDays:  cfg.Alerts.NotifyWindowDays,
		LowStockThreshold: cfg.Alerts.LowStockThreshold,
	}, log)
	alertWorker.Start()

	// Create server
	srv := server.NewServer(cfg, log, db)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, alertWorker, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
