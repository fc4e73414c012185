// Package server exposes the indicator catalog over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgentShepherd/codeintel/internal/api"
	"github.com/AgentShepherd/codeintel/internal/indicators"
	"github.com/AgentShepherd/codeintel/internal/logger"
)

var log = logger.New("server")

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server serves a catalog that can be replaced while running.
type Server struct {
	addr    string
	router  *gin.Engine
	catalog atomic.Pointer[indicators.Catalog]
}

// New creates a server for addr (host:port) serving catalog.
func New(addr string, catalog *indicators.Catalog) *Server {
	registerValidators()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply middleware in order
	router.Use(gin.Recovery())
	router.Use(api.RequestLogMiddleware())
	router.Use(api.SecurityHeadersMiddleware())
	router.Use(api.BodySizeLimitMiddleware(api.MaxBodySize))

	s := &Server{addr: addr, router: router}
	s.catalog.Store(catalog)
	NewHandler(s.Catalog).RegisterRoutes(router)
	return s
}

// Handler returns the HTTP handler for the API
func (s *Server) Handler() http.Handler {
	return s.router
}

// Catalog returns the catalog currently being served.
func (s *Server) Catalog() *indicators.Catalog {
	return s.catalog.Load()
}

// Swap replaces the served catalog. Requests already in flight keep the
// catalog they started with.
func (s *Server) Swap(c *indicators.Catalog) {
	if c == nil {
		return
	}
	s.catalog.Store(c)
	log.Info("Catalog swapped (precise=%s, dark=%s)", c.Links().Precise, c.Palette().Dark)
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening on http://%s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
