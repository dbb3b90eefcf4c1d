package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tx-lab/contract"
	"tx-lab/errors"
	grpcserver "tx-lab/infrastructure/grpc/server"
	"tx-lab/infrastructure/rest"
	"tx-lab/infrastructure/storage"
	"tx-lab/observability"
	"tx-lab/repositories"
	"tx-lab/runtime"
	"tx-lab/runtime/workers"
	"tx-lab/services"

	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every defer (database close, executor drain) run.
func run() error {
	// 1. Configuration & Logger
	config, err := loadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Message store
	transactor, closeStore, err := openStore(ctx, config, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// 4. Worker pool
	sup := workers.NewSupervisor(log, config.RestartInterval)
	executor := runtime.NewExecutor(log, sup, config.NumberOfWorkers, config.QueueSize)
	executor.Start(ctx)
	defer executor.Stop()

	monitoring := observability.NewMonitoringManager(log, executor)
	if config.MetricInterval > 0 {
		reporter := workers.NewSupervisor(log, config.RestartInterval)
		go reporter.Add(workers.NewReporterWorker(log, monitoring, config.MetricInterval)).Run(ctx)
		defer reporter.Stop()
	}
	messageService := services.NewMessageService(log, executor, transactor, monitoring)

	// 5. HTTP server
	gin.SetMode(gin.ReleaseMode)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           rest.NewRouter(log, rest.NewMessageHandler(log, messageService, monitoring)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. gRPC health server
	var health *grpcserver.HealthServer
	if config.GrpcHealthPort > 0 {
		healthAddress := fmt.Sprintf("%s:%d", config.Host, config.GrpcHealthPort)
		listener, err := net.Listen("tcp", healthAddress)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
		}
		health = grpcserver.NewHealthServer(log)
		go func() {
			if err := health.Serve(listener); err != nil {
				errChan <- fmt.Errorf("gRPC health server error: %w", err)
			}
		}()
		health.MarkServing()
	}

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup: stop accepting requests, then let the executor drain via defer
	if health != nil {
		health.MarkNotServing()
		defer health.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown incomplete", "error", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}

func openStore(ctx context.Context, config Config, log *slog.Logger) (contract.Transactor, func(), error) {
	switch config.StoreDriver {
	case driverBadger:
		db, err := storage.OpenBadger(config.BadgerFilepath, log)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewBadgerStore(db, log), func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}, nil
	case driverPostgres:
		pool, err := storage.NewPostgresPool(ctx, config.PostgresDSN, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return repositories.NewPostgresStore(pool, log), func() {
			log.Info("Closing PostgreSQL pool...")
			pool.Close()
		}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownStoreDriver, config.StoreDriver)
	}
}
