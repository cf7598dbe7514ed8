package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/covid-banking-ledger/internal/api"
	"github.com/covid-banking-ledger/internal/api/service"
	"github.com/covid-banking-ledger/internal/config"
	"github.com/covid-banking-ledger/internal/data/snapshot"
	"github.com/covid-banking-ledger/internal/domain/ledger"
	"github.com/covid-banking-ledger/internal/logger"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig("bank_api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize snapshot store and load the ledger wholesale
	store, err := snapshot.NewFileStore(log, cfg.Ledger.SnapshotPath)
	if err != nil {
		log.Error("Failed to initialize snapshot store", "error", err)
		os.Exit(1)
	}

	bankLedger, err := ledger.Open(store)
	if err != nil {
		log.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}
	log.Info("ledger loaded",
		"accounts", len(bankLedger.AccountIDs()),
		"transactions", len(bankLedger.Transactions()),
		"snapshot_path", cfg.Ledger.SnapshotPath,
	)

	// The simulated business clock starts where config says; the clock
	// endpoint can move it at runtime.
	clock := service.NewSimulatedClock(cfg.Clock.Date())
	bankService := service.NewBankService(log, bankLedger, clock)

	// Initialize REST server
	server := api.NewServer(log, cfg, bankService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence. The ledger needs no flushing: every
	// mutating call already persisted synchronously.
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
