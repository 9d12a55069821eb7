package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Placeholder renders the page shown for features that do not exist yet.
func Placeholder(title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "placeholder", newPage(c, title, nil))
	}
}

// RedirectHome sends unknown protected paths to the dashboard.
func RedirectHome(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}
