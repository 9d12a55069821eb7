package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after
// RequireAuthenticated, which sets the role. Roles compare case-insensitively.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[domain.NormalizeRole(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(RoleKey).(string)
			if _, ok := allowed[domain.NormalizeRole(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Bạn không có quyền thực hiện thao tác này.")
			}
			return next(c)
		}
	}
}
