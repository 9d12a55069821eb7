package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	// CSRFKey holds the form token on the echo context.
	CSRFKey = "csrf"
	// CSRFField is the hidden form field carrying the token.
	CSRFField = "_csrf"
	// CSRFHeader carries the token for script clients.
	CSRFHeader   = "X-CSRF-Token"
	csrfCookie   = "_csrf"
	msgCrossSite = "Yêu cầu không hợp lệ."
)

// CSRF issues a per-browser token cookie and checks it on every unsafe form
// request. JSON routes under skipPrefix are left to RejectCrossSite.
func CSRF(skipPrefix string) echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			return skipPrefix != "" && strings.HasPrefix(c.Request().URL.Path, skipPrefix)
		},
		TokenLookup:    "form:" + CSRFField + ",header:" + CSRFHeader,
		ContextKey:     CSRFKey,
		CookieName:     csrfCookie,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	})
}

// CSRFToken returns the token CSRF stored for the current request.
func CSRFToken(c echo.Context) string {
	token, _ := c.Get(CSRFKey).(string)
	return token
}

// RejectCrossSite refuses state-changing requests that the browser reports
// as coming from another site, via Sec-Fetch-Site or Origin. Requests
// without either header (CLI tools, tests) pass.
func RejectCrossSite() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			switch req.Header.Get("Sec-Fetch-Site") {
			case "", "same-origin", "none":
			default:
				return echo.NewHTTPError(http.StatusForbidden, msgCrossSite)
			}

			if origin := req.Header.Get(echo.HeaderOrigin); origin != "" && !sameHost(origin, req.Host) {
				return echo.NewHTTPError(http.StatusForbidden, msgCrossSite)
			}
			return next(c)
		}
	}
}

func sameHost(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
