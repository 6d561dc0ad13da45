// Package handlers provides the HTTP API for the rooftop subsidy engine.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/cors"

	"rooftop-subsidy-engine/internal/config"
	"rooftop-subsidy-engine/internal/services/database"
	s3service "rooftop-subsidy-engine/internal/services/s3"
	"rooftop-subsidy-engine/internal/services/schemes"
)

// Server holds all handler dependencies.
type Server struct {
	cfg        *config.Config
	db         *database.DB
	households *database.HouseholdRepository
	reminders  *database.ReminderRepository
	energy     *database.EnergyRepository
	health     *database.HealthRepository
	projects   *database.ProjectRepository
	schemes    *schemes.Service
	photos     *s3service.Service
}

// New creates a server. db and photos may be nil; the estimation and scheme
// endpoints keep working without them, persistence endpoints return 503.
func New(cfg *config.Config, db *database.DB, matcher *schemes.Service, photos *s3service.Service) *Server {
	s := &Server{
		cfg:     cfg,
		db:      db,
		schemes: matcher,
		photos:  photos,
	}

	if db != nil {
		pool := db.Pool()
		s.households = database.NewHouseholdRepository(pool)
		s.reminders = database.NewReminderRepository(pool)
		s.energy = database.NewEnergyRepository(pool)
		s.health = database.NewHealthRepository(pool)
		s.projects = database.NewProjectRepository(pool)
	}

	return s
}

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Routes builds the HTTP handler with CORS applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/api/health", s.healthHandler)

	// Core estimation and matching
	mux.HandleFunc("/api/providers", s.providersHandler)
	mux.HandleFunc("/api/estimate", s.estimateHandler)
	mux.HandleFunc("/api/schemes", s.schemesHandler)
	mux.HandleFunc("/api/schemes/match", s.matchSchemesHandler)

	// Household records
	mux.HandleFunc("/api/households", s.householdsHandler)
	mux.HandleFunc("/api/reminders", s.remindersHandler)
	mux.HandleFunc("/api/reminders/delete", s.deleteReminderHandler)
	mux.HandleFunc("/api/tracker", s.trackerHandler)
	mux.HandleFunc("/api/profile/health", s.profileHealthHandler)
	mux.HandleFunc("/api/profile/health/stat", s.healthStatHandler)
	mux.HandleFunc("/api/profile/health/log", s.healthLogHandler)
	mux.HandleFunc("/api/projects", s.projectsHandler)
	mux.HandleFunc("/api/projects/photo-url", s.projectPhotoURLHandler)
	mux.HandleFunc("/api/projects/photo-view", s.projectPhotoViewHandler)
	mux.HandleFunc("/api/dashboard", s.dashboardHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disconnected"
	if s.db != nil {
		if err := s.db.HealthCheck(r.Context()); err == nil {
			dbStatus = "connected"
		}
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Rooftop Subsidy Engine API is running",
		Data: map[string]interface{}{
			"status":    "healthy",
			"database":  dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
		},
	})
}

// requireDB writes a 503 and returns false when persistence is not available.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Database not available",
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

// householdIDParam reads the household_id query parameter common to the
// record endpoints.
func householdIDParam(r *http.Request) string {
	return r.URL.Query().Get("household_id")
}
