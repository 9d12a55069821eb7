package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

const (
	DefaultChartPeriod = "7d"
	DefaultTopLimit    = 10
)

// DashboardAPI implements ports.DashboardAPI against /dashboard.
type DashboardAPI struct {
	client *Client
}

func NewDashboardAPI(client *Client) *DashboardAPI {
	return &DashboardAPI{client: client}
}

func (a *DashboardAPI) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	data, err := a.client.do(ctx, "dashboard.stats", http.MethodGet, "/dashboard/stats", nil, nil)
	if err != nil {
		return nil, err
	}
	var stats domain.DashboardStats
	if err := decodeJSON("dashboard.stats", data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *DashboardAPI) Chart(ctx context.Context, period string) ([]domain.ChartPoint, error) {
	if period == "" {
		period = DefaultChartPeriod
	}
	query := url.Values{"period": {period}}
	data, err := a.client.do(ctx, "dashboard.chart", http.MethodGet, "/dashboard/chart", query, nil)
	if err != nil {
		return nil, err
	}
	var points []domain.ChartPoint
	if err := decodeJSON("dashboard.chart", data, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (a *DashboardAPI) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	data, err := a.client.do(ctx, "dashboard.top", http.MethodGet, "/dashboard/top-products", query, nil)
	if err != nil {
		return nil, err
	}
	var products []domain.TopProduct
	if err := decodeJSON("dashboard.top", data, &products); err != nil {
		return nil, err
	}
	return products, nil
}
