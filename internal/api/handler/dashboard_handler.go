package handler

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
)

type DashboardHandler struct {
	svc ports.DashboardService
}

func NewDashboardHandler(svc ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// DashboardView is rendered by the dashboard template.
type DashboardView struct {
	*ports.DashboardView
	Period  string
	Periods []string
}

// Show renders the dashboard. An unknown period falls back to the first one.
func (h *DashboardHandler) Show(c echo.Context) error {
	period := c.QueryParam("period")
	if !slices.Contains(domain.ChartPeriods, period) {
		period = domain.ChartPeriods[0]
	}

	view, err := h.svc.Overview(c.Request().Context(), period)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "dashboard", newPage(c, "Dashboard", DashboardView{
		DashboardView: view,
		Period:        period,
		Periods:       domain.ChartPeriods,
	}))
}
