// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtranjr/msds601-highdim-group9/session"
)

// Config holds server settings.
type Config struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	CookieName     string
	CookieTTL      time.Duration
}

// DefaultConfig returns local-only defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           "127.0.0.1:8080",
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		RequestTimeout: 5 * time.Second,
		CookieName:     "highdim_session",
		CookieTTL:      24 * time.Hour,
	}
}

// Server is the HTTP front end of the diagnostic.
type Server struct {
	cfg      Config
	router   *mux.Router
	server   *http.Server
	sessions *session.Manager
	metrics  *Metrics
	checks   map[string]HealthCheck
	started  time.Time
	logger   zerolog.Logger
	page     *template.Template
	upgrader websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithHealthCheck adds a named dependency check to /health.
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(s *Server) { s.checks[name] = check }
}

// New builds the router. metrics may be nil, in which case a private
// registry is created.
func New(cfg Config, sessions *session.Manager, metrics *Metrics, opts ...Option) *Server {
	if metrics == nil {
		metrics = NewMetrics()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultConfig().RequestTimeout
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultConfig().CookieName
	}
	s := &Server{
		cfg:      cfg,
		router:   mux.NewRouter(),
		sessions: sessions,
		metrics:  metrics,
		checks:   make(map[string]HealthCheck),
		started:  time.Now(),
		logger:   zerolog.Nop(),
		page:     pageTemplate,
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 4096},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.corsMiddleware)

	// Long-lived; no request deadline.
	s.router.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	page := s.router.PathPrefix("/").Subrouter()
	page.Use(s.timeoutMiddleware)
	page.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	page.HandleFunc("/fullrank/preset", s.handlePresetForm).Methods(http.MethodPost)
	page.HandleFunc("/fullrank/shape", s.handleShapeForm).Methods(http.MethodPost)
	page.HandleFunc("/fullrank/regenerate", s.handleRegenerateForm).Methods(http.MethodPost)

	api := s.router.PathPrefix("/").Subrouter()
	api.Use(s.timeoutMiddleware)
	api.Use(s.jsonContentTypeMiddleware)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/api/fullrank", s.handleState).Methods(http.MethodGet)
	api.HandleFunc("/api/fullrank/events", s.handleEvent).Methods(http.MethodPost)

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

// Handler returns the root handler (for tests and embedding).
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully within grace.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("http server listening")

	errc := make(chan error, 1)
	go func() { errc <- s.server.Serve(ln) }()

	select {
	case err = <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.logger.Info().Msg("shutting down http server")
	if err = s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
