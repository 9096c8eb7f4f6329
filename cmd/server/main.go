package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/config"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/database"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	propertyRepo := repository.NewPropertyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	inflationRepo := repository.NewInflationRepository(db)
	dictionaryRepo := repository.NewDictionaryRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	settingsService := service.NewSettingsService(settingsRepo, cfg.Finance.DefaultCountry)
	inflationService := service.NewInflationService(inflationRepo)
	dictionaryService := service.NewDictionaryService(dictionaryRepo)
	propertyService := service.NewPropertyService(
		propertyRepo,
		settingsService,
		inflationService,
		cfg.Finance.EvaluationYear,
	)
	portfolioService := service.NewPortfolioService(
		propertyRepo,
		settingsService,
		inflationService,
		cfg.Finance.EvaluationYear,
	)
	snapshotService := service.NewSnapshotService(portfolioService, snapshotRepo)
	calculatorService := service.NewCalculatorService(
		settingsService,
		inflationService,
		cfg.Finance.EvaluationYear,
	)

	// Scheduled portfolio snapshots
	var scheduler *service.SnapshotScheduler
	if cfg.Snapshot.Schedule != "" {
		scheduler = service.NewSnapshotScheduler(snapshotService)
		if err := scheduler.Start(cfg.Snapshot.Schedule); err != nil {
			log.Fatalf("Failed to start snapshot scheduler: %v", err)
		}
		log.Printf("Portfolio snapshots scheduled: %s", cfg.Snapshot.Schedule)
	}

	// Create router
	router := api.NewRouter(
		systemService,
		propertyService,
		portfolioService,
		snapshotService,
		settingsService,
		inflationService,
		dictionaryService,
		calculatorService,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting real estate tracker %s on %s (evaluation year %d)",
			version.Version, cfg.Server.Addr, cfg.Finance.EvaluationYear)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-ctx.Done():
			log.Println("Timed out waiting for a running snapshot")
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
