package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/api"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/cache"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/config"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/content"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/csvrates"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/database"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/frankfurter"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/repository"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the in-memory session store
	db, err := database.OpenSession()
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer db.Close()

	// Session state: result cache and conversion ledger
	resultCache := cache.NewResultCache()
	historyRepo := repository.NewHistoryRepository(db, cfg.History.Limit)

	// Rate provider client
	rateClient := frankfurter.NewRateClient(cfg.RateAPI.BaseURL, cfg.RateAPI.Timeout)

	// Create services
	systemService := service.NewSystemService(db)
	conversionService := service.NewConversionService(rateClient, resultCache, historyRepo)
	ratesService := service.NewRatesService(csvrates.NewLoader(cfg.Data.RatesCSVPath))
	historyService := service.NewHistoryService(historyRepo)
	contentService := service.NewContentService(content.NewSelector(cfg.Data.CuriosityFile))

	// The provider refreshes its rates once a day, so flush the result
	// cache on that schedule.
	location, err := time.LoadLocation(cfg.Cache.Location)
	if err != nil {
		log.Fatalf("Failed to load cache flush timezone: %v", err)
	}
	scheduler := cron.New(cron.WithLocation(location))
	if _, err := scheduler.AddFunc(cfg.Cache.FlushCron, func() {
		resultCache.Flush()
		log.Println("Flushed rate result cache")
	}); err != nil {
		log.Fatalf("Failed to schedule cache flush: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, conversionService, ratesService, historyService, contentService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
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

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
