// Package http serves the gateway API over gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/config"
)

// Server owns the gin engine and the listener serving it.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger
}

// New builds a server from cfg. Routes are added later through Engine.
// The API only serves GET requests, so the body limit mostly guards probes
// and misdirected uploads.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Engine exposes the gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Config returns the settings the server was built with.
func (s *Server) Config() *config.ServerConfig {
	return s.config
}

// Addr is the host:port the server listens on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves in the background. The returned channel yields at most one
// listen error and is closed once serving stops.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)

		s.logger.Info("starting homepage gateway",
			slog.String("addr", s.httpServer.Addr),
			slog.Duration("read_timeout", s.config.ReadTimeout),
			slog.Duration("write_timeout", s.config.WriteTimeout),
			slog.Int64("max_request_size", s.config.MaxRequestSize),
		)

		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return
		}

		errCh <- fmt.Errorf("http server error: %w", err)
	}()

	return errCh
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("stopping homepage gateway")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("homepage gateway stopped")

	return nil
}

// Run starts the server and blocks until ctx is cancelled or the server
// fails. On cancellation in-flight requests get ShutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	serverErr := s.Start()

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return err
		}

		return nil

	case <-ctx.Done():
		s.logger.Info("initiating graceful shutdown",
			slog.Duration("timeout", s.config.ShutdownTimeout),
			slog.Any("cause", context.Cause(ctx)),
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

// maxBodySize caps request bodies at maxBytes. A declared Content-Length over
// the cap is refused up front; chunked bodies fail on read.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			RespondWithErrorCode(c, dto.ErrorCodePayloadTooLarge, "request body too large")
			c.Abort()

			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
