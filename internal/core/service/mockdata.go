package service

import "github.com/waresmart/warehouse-console/internal/core/domain"

// Demo data served when the backend is unreachable and fallback is enabled.
// The mock backend seeds itself from the same values.

var mockUsers = []domain.User{
	{ID: "1", FullName: "Nguyễn Văn Khải", Email: "khai.nv@msparts.vn", Username: "admin_kho", Role: domain.RoleAdmin, RoleLabel: "Quản trị viên", IsActive: true},
	{ID: "2", FullName: "Lê Minh Tú", Email: "tu.lm@msparts.vn", Username: "nv_kho_01", Role: domain.RoleStaff, RoleLabel: "Nhân viên", IsActive: true},
	{ID: "3", FullName: "Phạm Thu Hà", Email: "ha.pt@msparts.vn", Username: "nv_banhang_02", Role: domain.RoleStaff, RoleLabel: "Nhân viên", IsActive: false},
	{ID: "4", FullName: "Trần Đức Duy", Email: "duy.td@msparts.vn", Username: "duy_warehouse", Role: domain.RoleStaff, RoleLabel: "Nhân viên", IsActive: true},
}

var mockStats = domain.DashboardStats{
	TotalInventory: 24510,
	LowStockCount:  18,
	TodayImport:    1240,
	TodayExport:    958,
}

var mockChart = []domain.ChartPoint{
	{Day: "Thứ 2", Import: 85, Export: 60},
	{Day: "Thứ 3", Import: 70, Export: 40},
	{Day: "Thứ 4", Import: 45, Export: 55},
	{Day: "Thứ 5", Import: 95, Export: 75},
	{Day: "Thứ 6", Import: 50, Export: 30},
	{Day: "Thứ 7", Import: 35, Export: 20},
	{Day: "CN", Import: 25, Export: 15},
}

var mockAllocation = []domain.Allocation{
	{Name: "Màn hình", Percent: 45},
	{Name: "Pin điện thoại", Percent: 25},
	{Name: "Vỏ & Linh kiện khác", Percent: 30},
}

var mockTopProducts = []domain.TopProduct{
	{ID: 1, Name: "Màn hình iPhone 13 Pro Max", Type: "OLED Zin", SKU: "SCR-I13PM-001", Sold: 452, Stock: 1240, Revenue: 1250000000, Status: domain.ProductSelling},
	{ID: 2, Name: "Pin Samsung Galaxy S21 Ultra", Type: "Chính hãng", SKU: "BAT-SS21U-024", Sold: 321, Stock: 85, Revenue: 245000000, Status: domain.ProductLow},
	{ID: 3, Name: "Vỏ mặt sau iPhone 14", Type: "Kính zin", SKU: "BKC-I14-99", Sold: 215, Stock: 512, Revenue: 158000000, Status: domain.ProductSelling},
}

// MockUsers returns a copy of the demo user list.
func MockUsers() []domain.User {
	return append([]domain.User(nil), mockUsers...)
}

func MockStats() domain.DashboardStats {
	return mockStats
}

func MockChart() []domain.ChartPoint {
	return append([]domain.ChartPoint(nil), mockChart...)
}

func MockTopProducts() []domain.TopProduct {
	return append([]domain.TopProduct(nil), mockTopProducts...)
}

// Allocation has no backend endpoint; it is always the demo breakdown.
func Allocation() []domain.Allocation {
	return append([]domain.Allocation(nil), mockAllocation...)
}
