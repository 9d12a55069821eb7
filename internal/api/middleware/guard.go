package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/metrics"
)

// Context keys set on admitted requests.
const (
	IdentityKey = "identity"
	RoleKey     = "role"
)

const checkingPage = `<!doctype html>
<html lang="vi"><head><meta charset="utf-8"><meta http-equiv="refresh" content="1"><title>WareSmart</title></head>
<body><p class="checking">Đang kiểm tra đăng nhập...</p></body></html>`

// SessionSource is the read side of the session context.
type SessionSource interface {
	Session() domain.Session
}

// RequireAuthenticated admits only logged-in sessions; anonymous requests are
// redirected to entries.Anonymous.
func RequireAuthenticated(sessions SessionSource, entries domain.EntryPoints) echo.MiddlewareFunc {
	return guard(domain.GuardAuthenticated, sessions, entries)
}

// RequireAnonymous admits only anonymous sessions; logged-in requests are
// redirected to entries.Authenticated.
func RequireAnonymous(sessions SessionSource, entries domain.EntryPoints) echo.MiddlewareFunc {
	return guard(domain.GuardAnonymous, sessions, entries)
}

func guard(g domain.Guard, sessions SessionSource, entries domain.EntryPoints) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := sessions.Session()
			admission := domain.Admit(g, s, entries)
			metrics.GuardDecisionsTotal.WithLabelValues(string(g), string(admission.Decision)).Inc()

			switch admission.Decision {
			case domain.DecisionChecking:
				h := c.Response().Header()
				h.Set("Refresh", "1")
				h.Set(echo.HeaderCacheControl, "no-store")
				return c.HTML(http.StatusOK, checkingPage)
			case domain.DecisionRedirect:
				return c.Redirect(http.StatusFound, admission.Location)
			}

			if s.Identity != nil {
				c.Set(IdentityKey, s.Identity)
				c.Set(RoleKey, s.Identity.Role)
			}
			return next(c)
		}
	}
}

// Identity returns the identity stored by RequireAuthenticated, or nil.
func Identity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(IdentityKey).(*domain.Identity)
	return identity
}
