package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"opyta/internal/cache"
	"opyta/internal/config"
	"opyta/internal/core"
	apphttp "opyta/internal/http"
	"opyta/internal/log"
	"opyta/internal/services"
	ports "opyta/internal/sheets"
	gsheet "opyta/internal/sheets/google"
	mem "opyta/internal/sheets/memory"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(os.Getenv("LOG_LEVEL")),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	var (
		reader ports.SnapshotReader
		writer ports.TaxTableWriter
	)
	switch cfg.DataBackend {
	case "sheets":
		cli, err := gsheet.New(context.Background(), gsheet.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			CredentialsJSON: cfg.GoogleCredentialsJSON,
			CredentialsFile: cfg.GoogleCredentialsFile,
			ProjectsSheet:   cfg.ProjectsSheet,
			RevenuesSheet:   cfg.RevenuesSheet,
			ExpensesSheet:   cfg.ExpensesSheet,
			CostsSheet:      cfg.CostsSheet,
			TaxParamsSheet:  cfg.TaxParamsSheet,
			TaxResultSheet:  cfg.TaxResultSheet,
		})
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
			os.Exit(1)
		}
		reader, writer = cli, cli
		logger.Info("Initialized Google Sheets backend", log.FieldBackend, cfg.DataBackend)
	default:
		store := mem.NewSeeded()
		reader, writer = store, store
		logger.Info("Initialized memory backend", log.FieldBackend, cfg.DataBackend)
	}

	snapshots := cache.NewTTLValue[core.Snapshot](cfg.SnapshotTTL)
	dash := services.NewDashboardService(reader, snapshots, logger)
	tax := services.NewTaxService(dash, writer, logger)

	srv := apphttp.NewServer(":"+cfg.Port, dash, tax, logger)

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting opyta dashboard server",
		"port", cfg.Port,
		log.FieldBackend, cfg.DataBackend,
		"snapshot_ttl", cfg.SnapshotTTL.String())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
