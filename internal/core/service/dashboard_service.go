package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/waresmart/warehouse-console/internal/core/ports"
	"github.com/waresmart/warehouse-console/internal/metrics"
)

const topProductsLimit = 10

// DashboardService assembles the dashboard page from the backend, falling
// back to demo data per section.
type DashboardService struct {
	api      ports.DashboardAPI
	fallback bool
	log      zerolog.Logger
}

func NewDashboardService(api ports.DashboardAPI, fallback bool, log zerolog.Logger) *DashboardService {
	return &DashboardService{api: api, fallback: fallback, log: log}
}

func (s *DashboardService) Overview(ctx context.Context, period string) (*ports.DashboardView, error) {
	view := &ports.DashboardView{Allocation: Allocation()}

	stats, err := s.api.Stats(ctx)
	switch {
	case err == nil:
		view.Stats = *stats
	case s.useMock("dashboard.stats", err):
		view.Stats = MockStats()
		view.FromMock = true
	default:
		return nil, err
	}

	chart, err := s.api.Chart(ctx, period)
	switch {
	case err == nil:
		view.Chart = chart
	case s.useMock("dashboard.chart", err):
		view.Chart = MockChart()
		view.FromMock = true
	default:
		return nil, err
	}

	top, err := s.api.TopProducts(ctx, topProductsLimit)
	switch {
	case err == nil:
		view.TopProducts = top
	case s.useMock("dashboard.top_products", err):
		view.TopProducts = MockTopProducts()
		view.FromMock = true
	default:
		return nil, err
	}

	return view, nil
}

func (s *DashboardService) useMock(resource string, err error) bool {
	if !s.fallback {
		return false
	}
	s.log.Warn().Err(err).Str("resource", resource).Msg("dashboard data unavailable, serving mock data")
	metrics.MockFallbacksTotal.WithLabelValues(resource).Inc()
	return true
}

var (
	_ ports.DashboardService = (*DashboardService)(nil)
	_ ports.UserService      = (*UserService)(nil)
	_ ports.SessionContext   = (*SessionContext)(nil)
)
