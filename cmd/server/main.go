package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/client"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/config"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/db"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/repository"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/router"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/services"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/storage"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Run migrations
	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Initialize database
	database, err := db.NewSQLiteDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()

	// Archive of relayed uploads
	store, err := storage.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	// Upstream summarizer
	upstream := client.New(cfg.UpstreamURL, client.WithLogger(logger))

	uploadRepo := repository.NewRepository(database)
	uploadService := services.NewService(uploadRepo, store, upstream, logger)

	// Setup HTTP router
	handler := router.NewRouter(uploadService, logger, cfg.MaxFileSize)

	// Summaries of large scans take a while, so writes get a generous timeout
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       2 * time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			"port", cfg.Port,
			"upstream", upstream.Endpoint(),
			"archive", store.Enabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
