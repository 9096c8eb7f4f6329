package main

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/config"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/database"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
)

// app holds the services backed by the configured database.
type app struct {
	cfg        *config.Config
	db         *sql.DB
	settings   *service.SettingsService
	calculator *service.CalculatorService
	portfolio  *service.PortfolioService
}

// openApp loads the configuration and opens the migrated database.
// Callers must Close the returned app.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	propertyRepo := repository.NewPropertyRepository(db)
	settingsService := service.NewSettingsService(repository.NewSettingsRepository(db), cfg.Finance.DefaultCountry)
	inflationService := service.NewInflationService(repository.NewInflationRepository(db))

	return &app{
		cfg:        cfg,
		db:         db,
		settings:   settingsService,
		calculator: service.NewCalculatorService(settingsService, inflationService, cfg.Finance.EvaluationYear),
		portfolio:  service.NewPortfolioService(propertyRepo, settingsService, inflationService, cfg.Finance.EvaluationYear),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
