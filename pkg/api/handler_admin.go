package api

import (
	"errors"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/govwatcher/govwatcher/pkg/scheduler"
	"github.com/govwatcher/govwatcher/pkg/watcher"
)

// pauseHandler handles POST /api/v1/admin/pause. The flag stops new
// notifier sends immediately; observation and analysis keep running so a
// resume has fresh state to deliver from.
func (s *Server) pauseHandler(c *echo.Context) error {
	var req PauseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.gate.SetPaused(req.Paused)

	msg := "deliveries resumed"
	if req.Paused {
		msg = "deliveries paused"
	}
	return c.JSON(http.StatusOK, &PauseResponse{
		Paused:  req.Paused,
		Message: msg,
	})
}

// tickHandler handles POST /api/v1/admin/tick/:chainID. Runs one watch
// tick for the chain synchronously, outside the periodic schedule.
func (s *Server) tickHandler(c *echo.Context) error {
	chainID := c.Param("chainID")
	if chainID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "chain id is required")
	}

	err := s.scheduler.ForceTick(c.Request().Context(), chainID)
	if err != nil {
		if errors.Is(err, scheduler.ErrUnknownChain) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, watcher.ErrCursorCorrupt) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("tick failed: %v", err))
	}

	return c.JSON(http.StatusOK, &TickResponse{
		ChainID: chainID,
		Message: "tick completed",
	})
}

// statsHandler handles GET /api/v1/stats.
func (s *Server) statsHandler(c *echo.Context) error {
	cfgStats := s.cfg.Stats()
	return c.JSON(http.StatusOK, &StatsResponse{
		Pipeline: s.metrics.Snapshot(),
		Configuration: ConfigurationStats{
			Chains:       cfgStats.Chains,
			LLMProviders: cfgStats.LLMProviders,
		},
		Paused: s.gate.Paused(),
	})
}
