// Package api exposes the admin HTTP surface: health, stats, metrics,
// and the operational controls (delivery pause, forced ticks).
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/database"
	"github.com/govwatcher/govwatcher/pkg/delivery"
	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/scheduler"
)

// Server is the admin HTTP server.
type Server struct {
	cfg       *config.Config
	dbClient  *database.Client
	gate      *delivery.Gate
	scheduler *scheduler.Scheduler
	metrics   *metrics.Registry
	gatherer  prometheus.Gatherer

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the admin server and registers its routes.
func NewServer(cfg *config.Config, dbClient *database.Client, gate *delivery.Gate, sched *scheduler.Scheduler, reg *metrics.Registry, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		cfg:       cfg,
		dbClient:  dbClient,
		gate:      gate,
		scheduler: sched,
		metrics:   reg,
		gatherer:  gatherer,
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/api/v1/stats", s.statsHandler)
	e.POST("/api/v1/admin/pause", s.pauseHandler)
	e.POST("/api/v1/admin/tick/:chainID", s.tickHandler)

	s.echo = e
	return s
}

// Start serves HTTP on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
