package domain

// DashboardStats are the four summary cards on the dashboard.
type DashboardStats struct {
	TotalInventory int64 `json:"totalInventory"`
	LowStockCount  int64 `json:"lowStockCount"`
	TodayImport    int64 `json:"todayImport"`
	TodayExport    int64 `json:"todayExport"`
}

// ChartPoint is one day of the import/export trend.
type ChartPoint struct {
	Day    string `json:"day"`
	Import int64  `json:"import"`
	Export int64  `json:"export"`
}

type ProductStatus string

const (
	ProductSelling ProductStatus = "selling"
	ProductLow     ProductStatus = "low"
)

// TopProduct is a row of the best-sellers table.
type TopProduct struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	SKU     string        `json:"sku"`
	Sold    int64         `json:"sold"`
	Stock   int64         `json:"stock"`
	Revenue int64         `json:"revenue"`
	Status  ProductStatus `json:"status"`
	Image   string        `json:"image,omitempty"`
}

// Allocation is a slice of the inventory breakdown.
type Allocation struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// ChartPeriods lists the periods accepted by the chart endpoint.
var ChartPeriods = []string{"7d", "30d"}
