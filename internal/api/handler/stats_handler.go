package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techstore/storefront-api/internal/core/ports"
)

type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Dashboard returns the headline totals for the admin dashboard.
//
// @Summary      Dashboard stats
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ChartData returns six months of revenue and signup buckets, oldest first.
//
// @Summary      Dashboard chart data
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ChartData
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/chart-data [get]
func (h *StatsHandler) ChartData(c echo.Context) error {
	data, err := h.service.ChartData(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}
