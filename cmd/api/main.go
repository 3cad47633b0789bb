package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/salesnotes/sfdc-notes-agent/pkg/validator"

	"github.com/salesnotes/sfdc-notes-agent/internal/adapter/handler"
	"github.com/salesnotes/sfdc-notes-agent/internal/adapter/repository"
	"github.com/salesnotes/sfdc-notes-agent/internal/infrastructure/cache"
	"github.com/salesnotes/sfdc-notes-agent/internal/infrastructure/database"
	"github.com/salesnotes/sfdc-notes-agent/internal/infrastructure/storage"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/notes"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/push"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/transcribe"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// @title           SFDC Notes Agent API
// @version         1.0
// @description     API for summarizing sales-call transcripts into structured opportunity notes and synchronizing them into Salesforce

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
	}

	runRepo := repository.NewRunRepository(db)

	// Initialize optional summary cache
	var summaryCache notes.SummaryCache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis summary cache...")
		redisCache, err := cache.NewSummaryCache(cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		summaryCache = redisCache
	}

	// Initialize optional run archive
	var artifactStore *storage.ArtifactStore
	if cfg.Storage.Enabled {
		log.Println("📦 Connecting to artifact archive...")
		artifactStore, err = storage.NewArtifactStore(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to artifact archive: %v", err)
		}
	}

	// Initialize summarization backend
	log.Printf("🤖 Initializing summarization backend (%s)...", cfg.Summarizer.Backend)
	summarizer, err := notes.NewSummarizer(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize summarizer: %v", err)
	}
	if closer, ok := summarizer.(io.Closer); ok {
		defer closer.Close()
	}
	notesService := notes.NewService(summarizer, summaryCache, logger)

	// Initialize transcription backend
	log.Printf("🎙️  Initializing transcription backend (%s)...", cfg.Transcription.Backend)
	transcriber, err := transcribe.NewTranscriber(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize transcriber: %v", err)
	}

	// Initialize push service
	pushService := push.NewService(logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	runController := handler.NewRunController(notesService, pushService, runRepo, artifactStore, cfg, logger)
	transcribeController := handler.NewTranscribeController(transcriber, logger)

	router := handler.NewRouter(cfg, runController, transcribeController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/healthz", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited")
}
