package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kasparro/content-engine/config"
	httpDelivery "github.com/kasparro/content-engine/internal/delivery/http"
	"github.com/kasparro/content-engine/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Kasparro Content Engine v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize the content pipeline
	pipeline := usecase.NewPipelineService(usecase.PipelineConfig{
		EnableDebugLogging: cfg.Generation.EnableDebugLogging,
	})

	if cfg.Generation.EnableDebugLogging {
		log.Printf("Generation debug logging enabled")
	}

	log.Printf("Rate limit: %d req/min per IP (burst %d)", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(pipeline)

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
