package main

import (
	"fmt"
	"log"
	"os"

	"github.com/wattshop/backend/config"
	"github.com/wattshop/backend/internal/catalog"
	httpDelivery "github.com/wattshop/backend/internal/delivery/http"
	"github.com/wattshop/backend/internal/domain"
	"github.com/wattshop/backend/internal/loader"
	"github.com/wattshop/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting WattShop Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Build the catalog once before serving begins. The loader never fails:
	// worst case the index holds the generated sample catalog.
	catalogLoader := loader.New(cfg.Data.PrimaryPath, cfg.Data.FallbackPath)
	records, meta := catalogLoader.Load()
	index := catalog.Build(records, meta)

	log.Printf("Catalog ready: %d products from %s", index.Len(), meta.Source)
	if meta.Error != "" {
		log.Printf("WARNING: catalog loaded with source error tag: %s", meta.Error)
	}

	// Initialize usecase layer
	engine := usecase.NewQueryEngine(index)

	reload := func() domain.CatalogMetadata {
		records, meta := catalogLoader.Load()
		index.Reload(records, meta)
		log.Printf("Catalog reloaded: %d products from %s", index.Len(), meta.Source)
		return index.Metadata()
	}

	if cfg.Auth.APIKey != "" {
		log.Printf("API authentication enabled")
	} else {
		log.Printf("WARNING: API authentication disabled (no key configured, %s environment)", cfg.Server.Environment)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(engine, reload)

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
