package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/api/handlers"
	custommiddleware "github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/api/middleware"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/config"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	conversionService *service.ConversionService,
	ratesService *service.RatesService,
	historyService *service.HistoryService,
	contentService *service.ContentService,
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
		})

		convertHandler := handlers.NewConvertHandler(conversionService)
		r.Get("/convert", convertHandler.Convert)
		r.Get("/series", convertHandler.Series)

		ratesHandler := handlers.NewRatesHandler(ratesService)
		r.Route("/rates", func(r chi.Router) {
			r.Get("/", ratesHandler.GetRates)
			r.Post("/", ratesHandler.UploadRates)
		})

		historyHandler := handlers.NewHistoryHandler(historyService)
		r.Get("/history", historyHandler.Recent)

		contentHandler := handlers.NewContentHandler(contentService)
		r.Route("/content", func(r chi.Router) {
			r.Get("/curiosity", contentHandler.Curiosity)
			r.Get("/tip", contentHandler.Tip)
		})
	})

	return r
}
