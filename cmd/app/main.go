package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordermanagement/cmd"
	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/pkg/tracing"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	serviceName     = "order-management"
	shutdownTimeout = 10 * time.Second
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	level, _ := config.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(config, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracerProvider, err := tracing.NewProvider(serviceName, config.JaegerEndpoint)
	if err != nil {
		return err
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(config, gormDB, logger)

	e, err := httpin.NewRouter(ctx, app.CreateServer(logger), sqlDB, logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-serverErr:
		logger.Error("HTTP server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	jobManager.StopAll()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("HTTP server shutdown failed", "error", shutdownErr)
	}
	if shutdownErr := tracerProvider.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Tracer shutdown failed", "error", shutdownErr)
	}
	if closeErr := sqlDB.Close(); closeErr != nil {
		logger.Error("Database close failed", "error", closeErr)
	}

	return err
}
