package ports

import (
	"context"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

// DashboardAPI is the remote dashboard statistics API.
type DashboardAPI interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Chart(ctx context.Context, period string) ([]domain.ChartPoint, error)
	TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
}

// DashboardView is everything the dashboard page renders.
type DashboardView struct {
	Stats       domain.DashboardStats
	Chart       []domain.ChartPoint
	TopProducts []domain.TopProduct
	Allocation  []domain.Allocation
	FromMock    bool
}

// DashboardService assembles the dashboard, falling back to mock data.
type DashboardService interface {
	Overview(ctx context.Context, period string) (*DashboardView, error)
}
