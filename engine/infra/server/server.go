package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canvasflow/canvasflow/engine/workflow"
	wfrouter "github.com/canvasflow/canvasflow/engine/workflow/router"
	"github.com/canvasflow/canvasflow/pkg/config"
	"github.com/canvasflow/canvasflow/pkg/logger"
)

// Server hosts the canvas editing API. It owns the single graph instance;
// the workflow router serializes handler access to it, since the graph
// assumes a single logical editor session.
type Server struct {
	cfg   *config.Config
	log   logger.Logger
	graph *workflow.Graph
	http  *http.Server
}

func New(cfg *config.Config, log logger.Logger, graph *workflow.Graph) *Server {
	return &Server{cfg: cfg, log: log, graph: graph}
}

// Run starts the HTTP listener and blocks until the context is canceled,
// then drains in-flight requests within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.requestLogger())
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	wfrouter.New(s.graph).Register(engine.Group("/api/v0"))

	s.http = &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.log.Info("server shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// requestLogger attaches the server logger to the request context and logs
// each request on completion.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := logger.ContextWithLogger(c.Request.Context(), s.log)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		s.log.Debug("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
