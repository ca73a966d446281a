package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/metrics"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type StatsHandler struct {
	stats ports.StatsService
}

func NewStatsHandler(stats ports.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard returns the admin landing counters. Any failing query fails the
// whole response.
//
// @Summary      Dashboard counters
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  ports.DashboardStats
// @Failure      500  {object}  map[string]string
// @Router       /v1/admin/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	start := time.Now()
	stats, err := h.stats.Dashboard(c.Request().Context())
	metrics.DashboardDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
