// Package main runs the rooftop subsidy engine API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"rooftop-subsidy-engine/internal/config"
	"rooftop-subsidy-engine/internal/handlers"
	"rooftop-subsidy-engine/internal/services/database"
	s3service "rooftop-subsidy-engine/internal/services/s3"
	"rooftop-subsidy-engine/internal/services/schemes"
	"rooftop-subsidy-engine/internal/utils"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config from environment: %v", err)
		cfg = &config.Config{Port: "8080", AllowedOrigins: []string{"*"}}
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogLevel, cfg.Stage); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Server will run estimation endpoints only")
	}
	if db != nil {
		defer db.Close()
	}

	// Photo storage (optional)
	photos, err := s3service.NewService(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: Could not initialize photo storage: %v", err)
		photos = nil
	}

	matcher := schemes.NewService()

	server := handlers.New(cfg, db, matcher, photos)
	handler := server.Routes()

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)

	log.Printf("Rooftop Subsidy Engine API Server")
	log.Printf("Listening on http://localhost:%s", cfg.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Port)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
