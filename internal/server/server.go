// Package server provides the HTTP API for the portfolio studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/portfolio-studio/internal/app"
	"github.com/jonathan/portfolio-studio/internal/assist"
	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	controller *app.Controller
	jwtService *JWTService
	suggester  assist.Suggester
}

// Config holds server configuration
type Config struct {
	Port         int
	DataDir      string
	GeminiAPIKey string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}

	sessionConfig, err := config.NewSessionConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create session config: %w", err)
	}

	suggester, err := assist.New(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggester: %w", err)
	}

	s := &Server{
		store:      st,
		controller: app.New(st),
		jwtService: NewJWTService(sessionConfig),
		suggester:  suggester,
	}

	mux := http.NewServeMux()

	// Session
	mux.HandleFunc("POST /session/login", s.handleLogin)
	mux.HandleFunc("POST /session/logout", s.handleLogout)

	// Application state
	mux.HandleFunc("GET /state", s.handleState)

	// Editor intents
	mux.HandleFunc("POST /intents/field-changed", s.handleFieldChanged)
	mux.HandleFunc("POST /intents/navigate", s.handleNavigate)
	mux.HandleFunc("POST /intents/resolve-navigation", s.handleResolveNavigation)
	mux.HandleFunc("POST /intents/select-template", s.handleSelectTemplate)
	mux.HandleFunc("POST /intents/preview-mode", s.handlePreviewMode)

	// Profile
	mux.HandleFunc("GET /profile", s.handleGetProfile)
	mux.HandleFunc("POST /profile", s.handleSaveProfile)

	// Rendering and export
	mux.HandleFunc("GET /templates", s.handleTemplates)
	mux.HandleFunc("GET /render", s.handleRender)
	mux.HandleFunc("GET /export.pdf", s.handleExportPDF)

	// Writing assistance
	mux.HandleFunc("POST /assist/about", s.handleAssistAbout)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.suggester.Close(); err != nil {
		log.Printf("Error closing suggester: %v", err)
	}
	if err := s.store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failWith maps an error to its HTTP status and writes it
func (s *Server) failWith(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
