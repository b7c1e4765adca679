package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hero4147/cosmetic-compare-backend/config"
	httpDelivery "github.com/hero4147/cosmetic-compare-backend/internal/delivery/http"
	"github.com/hero4147/cosmetic-compare-backend/internal/infrastructure/cache"
	"github.com/hero4147/cosmetic-compare-backend/internal/infrastructure/catalog"
	"github.com/hero4147/cosmetic-compare-backend/internal/infrastructure/coupang"
	"github.com/hero4147/cosmetic-compare-backend/internal/infrastructure/incidecoder"
	"github.com/hero4147/cosmetic-compare-backend/internal/usecase"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err == nil {
		log.Printf(".env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Cosmetic Compare Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	resultCache := cache.NewMemoryCache()

	ingredientClient := incidecoder.NewClient(cfg.Sources.IncidecoderBaseURL, cfg.Sources.UserAgent, cfg.Sources.Timeout)
	priceClient := coupang.NewClient(cfg.Sources.CoupangBaseURL, cfg.Sources.UserAgent, cfg.Sources.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		ingredientClient.SetDebug(true)
		priceClient.SetDebug(true)
		log.Printf("Scrape client debug mode enabled")
	}

	log.Printf("Ingredient source: %s", cfg.Sources.IncidecoderBaseURL)
	log.Printf("Price source: %s", cfg.Sources.CoupangBaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	productCatalog, err := catalog.NewPostgresRepository(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to product catalog: %v", err)
	}
	defer productCatalog.Close()
	log.Printf("Product catalog connected (max_conns=%d)", cfg.Database.MaxConns)

	// Initialize usecase layer
	compareService := usecase.NewCompareService(resultCache, ingredientClient, priceClient, productCatalog)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(compareService, productCatalog)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
