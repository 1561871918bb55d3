package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nauticalab/confline/internal/schema"
)

// Server represents the config inspection HTTP server
type Server struct {
	router  *chi.Mux
	handler *Handler
	addr    string
	logger  *zap.Logger
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port       int
	Bind       string
	Schema     *schema.Schema
	Logger     *zap.Logger
	Version    string
	GitCommit  string
	BuildTime  string
	GoVersion  string
	Provenance string
}

// NewServer creates a new API server with the given configuration
func NewServer(config ServerConfig) (*Server, error) {
	if config.Schema == nil {
		return nil, fmt.Errorf("schema is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handler := NewHandler(
		config.Schema,
		logger,
		config.Version,
		config.GitCommit,
		config.BuildTime,
		config.GoVersion,
		config.Provenance,
	)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	setupRoutes(router, handler)

	bind := config.Bind
	if bind == "" {
		bind = "0.0.0.0"
	}
	addr := fmt.Sprintf("%s:%d", bind, config.Port)

	return &Server{
		router:  router,
		handler: handler,
		addr:    addr,
		logger:  logger,
	}, nil
}

// setupMiddleware configures the middleware chain
func setupMiddleware(router *chi.Mux, logger *zap.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
}

// requestLogger logs one structured line per completed request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestID", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// setupRoutes configures the API routes
func setupRoutes(router *chi.Mux, handler *Handler) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/version", handler.Version)
		r.Get("/options", handler.ListOptions)
		r.Post("/render", handler.Render)
	})
}

// Start starts the HTTP server and blocks until it exits.
func (s *Server) Start() error {
	s.logger.Info("starting API server", zap.String("addr", s.addr))

	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// StartWithContext starts the HTTP server and shuts it down gracefully
// when ctx is canceled.
func (s *Server) StartWithContext(ctx context.Context) error {
	s.logger.Info("starting API server", zap.String("addr", s.addr))

	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", zap.Error(err))
			return err
		}

		s.logger.Info("server stopped gracefully")
		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }
