package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/middleware"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/config"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	propertyService *service.PropertyService,
	portfolioService *service.PortfolioService,
	snapshotService *service.SnapshotService,
	settingsService *service.SettingsService,
	inflationService *service.InflationService,
	dictionaryService *service.DictionaryService,
	calculatorService *service.CalculatorService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/property", func(r chi.Router) {
			propertyHandler := handlers.NewPropertyHandler(propertyService)
			r.Get("/", propertyHandler.Properties)
			r.Post("/", propertyHandler.CreateProperty)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", propertyHandler.GetProperty)
				r.Put("/", propertyHandler.UpdateProperty)
				r.Delete("/", propertyHandler.DeleteProperty)
				r.Get("/metrics", propertyHandler.Metrics)
				r.Get("/projection", propertyHandler.Projection)
				r.Get("/mirr", propertyHandler.ProjectedMIRR)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, snapshotService)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/history", portfolioHandler.History)
			r.Post("/snapshot", portfolioHandler.Snapshot)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(settingsService)
			r.Get("/country", settingsHandler.Countries)
			r.Get("/country/{code}", settingsHandler.GetCountry)
			r.Put("/country/{code}", settingsHandler.UpdateCountry)
			r.Get("/selected", settingsHandler.SelectedCountry)
			r.Put("/selected", settingsHandler.SelectCountry)
		})

		r.Route("/inflation", func(r chi.Router) {
			inflationHandler := handlers.NewInflationHandler(inflationService)
			r.Get("/", inflationHandler.Rates)
			r.Put("/{year}", inflationHandler.SetRate)
		})

		r.Route("/dictionary", func(r chi.Router) {
			dictionaryHandler := handlers.NewDictionaryHandler(dictionaryService)
			r.Get("/", dictionaryHandler.Entries)
			r.Post("/", dictionaryHandler.CreateEntry)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", dictionaryHandler.GetEntry)
				r.Put("/", dictionaryHandler.UpdateEntry)
				r.Delete("/", dictionaryHandler.DeleteEntry)
			})
		})

		r.Route("/calculator", func(r chi.Router) {
			calculatorHandler := handlers.NewCalculatorHandler(calculatorService)
			r.Post("/amortization", calculatorHandler.Amortization)
			r.Post("/roi", calculatorHandler.RealAppreciation)
			r.Post("/true-roi", calculatorHandler.TrueROI)
			r.Post("/mirr", calculatorHandler.MIRR)
			r.Post("/projection", calculatorHandler.Projection)
		})
	})

	return r
}
