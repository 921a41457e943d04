// Package ui is the console dashboard server: a chi router whose JSON
// endpoints proxy every call through the API gateway client.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jub0bs/cors"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/logger"
	"github.com/dialdesk/callconsole/internal/ui/config"
	"github.com/dialdesk/callconsole/internal/ui/handlers"
)

const (
	// ServerShutdownTimeout is the timeout for graceful server shutdown
	ServerShutdownTimeout = 10 * time.Second
)

type Server struct {
	router    *chi.Mux
	config    *config.Config
	logger    *slog.Logger
	apiClient *client.Client
}

// NewServer creates the standalone console server.
func NewServer(cfg *config.Config, logger *slog.Logger, apiClient *client.Client) (*Server, error) {
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		logger:    logger,
		apiClient: apiClient,
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(SecurityHeaders(s.config.Environment))
	s.router.Use(RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))

	if len(s.config.AllowedOrigins) > 0 {
		corsMiddleware, err := cors.NewMiddleware(cors.Config{
			Origins:        s.config.AllowedOrigins,
			Methods:        []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			RequestHeaders: []string{"Authorization", "Content-Type"},
		})
		if err != nil {
			return fmt.Errorf("failed to build CORS middleware: %w", err)
		}
		s.router.Use(CORS(corsMiddleware))
	}

	return nil
}

func (s *Server) registerRoutes() {
	handlerService := &handlers.HandlerService{
		ApiClient:   s.apiClient,
		Environment: s.config.Environment,
	}

	s.router.Get("/health/live", handlerService.HealthLive)

	// Public routes (no session required)
	s.router.Post("/console/auth/login", handlerService.Login)

	// Protected routes (require a valid session token)
	s.router.Group(func(r chi.Router) {
		r.Use(s.RequireSession)

		r.Post("/console/auth/logout", handlerService.Logout)
		r.Get("/console/auth/profile", handlerService.Profile)

		r.Get("/console/campaigns", handlerService.ListCampaigns)
		r.Post("/console/campaigns", handlerService.CreateCampaign)
		r.Get("/console/campaigns/{campaignID}", handlerService.GetCampaign)
		r.Put("/console/campaigns/{campaignID}", handlerService.UpdateCampaign)
		r.Delete("/console/campaigns/{campaignID}", handlerService.DeleteCampaign)
		r.Get("/console/campaigns/{campaignID}/stats", handlerService.CampaignStats)

		r.Get("/console/campaigns/{campaignID}/contacts", handlerService.ListContacts)
		r.With(RequestSizeLimit(s.config.MaxUploadBytes)).
			Post("/console/campaigns/{campaignID}/contacts/upload", handlerService.UploadContacts)
		r.Delete("/console/contacts/{contactID}", handlerService.DeleteContact)

		r.Get("/console/recordings", handlerService.ListRecordings)
		r.Get("/console/recordings/{recordingID}/transcript", handlerService.GetTranscript)
		r.Get("/console/recordings/{recordingID}/download", handlerService.DownloadRecording)

		r.Get("/console/reports/collections", handlerService.CollectionsSummary)
		r.Get("/console/reports/agents", handlerService.AgentPerformance)
		r.Get("/console/reports/export", handlerService.ExportReport)
	})
}

// Start the console server and block until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("console server listening", slog.String("address", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down console server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}

// Router exposes the underlying mux for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}
