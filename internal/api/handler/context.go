package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/api/middleware"
	"github.com/waresmart/warehouse-console/internal/core/domain"
)

// MenuItem is a sidebar link.
type MenuItem struct {
	Path  string
	Label string
}

var (
	MainMenu = []MenuItem{
		{Path: "/", Label: "Dashboard"},
		{Path: "/products", Label: "Sản phẩm"},
		{Path: "/import", Label: "Nhập kho"},
		{Path: "/export", Label: "Xuất kho"},
		{Path: "/inventory", Label: "Tồn kho"},
		{Path: "/suppliers", Label: "Nhà cung cấp"},
	}
	SystemMenu = []MenuItem{
		{Path: "/reports", Label: "Báo cáo"},
		{Path: "/users", Label: "Người dùng"},
		{Path: "/settings", Label: "Cài đặt"},
	}
)

// Page is the data every console template receives.
type Page struct {
	Title      string
	Active     string
	Identity   *domain.Identity
	MainMenu   []MenuItem
	SystemMenu []MenuItem
	// CSRF is echoed back by every form on the page.
	CSRF string
	Data any
}

// newPage fills the chrome shared by all protected pages.
func newPage(c echo.Context, title string, data any) Page {
	return Page{
		Title:      title,
		Active:     c.Request().URL.Path,
		Identity:   middleware.Identity(c),
		MainMenu:   MainMenu,
		SystemMenu: SystemMenu,
		CSRF:       middleware.CSRFToken(c),
		Data:       data,
	}
}
