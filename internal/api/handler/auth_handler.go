package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/api/middleware"
	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
)

// AuthHandler serves the login form and logout action of the console.
type AuthHandler struct {
	sessions ports.SessionContext
	entries  domain.EntryPoints
}

func NewAuthHandler(sessions ports.SessionContext, entries domain.EntryPoints) *AuthHandler {
	return &AuthHandler{sessions: sessions, entries: entries}
}

type loginForm struct {
	Username string `form:"username" json:"username" validate:"required,max=128"`
	Password string `form:"password" json:"password" validate:"required,max=256"`
}

// LoginView is rendered by the login template.
type LoginView struct {
	Username string
	Error    string
}

// LoginPage renders the empty login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", Page{
		Title: "Đăng nhập hệ thống",
		CSRF:  middleware.CSRFToken(c),
		Data:  LoginView{},
	})
}

// Login submits the form. On success the browser is sent to the dashboard;
// otherwise the form is shown again with the error message.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderError(c, http.StatusBadRequest, form.Username, err.Error())
	}

	if _, err := h.sessions.Login(c.Request().Context(), form.Username, form.Password); err != nil {
		return h.renderError(c, loginStatus(err), form.Username, domain.UserMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, h.entries.Authenticated)
}

// Logout ends the session and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, h.entries.Anonymous)
}

func (h *AuthHandler) renderError(c echo.Context, status int, username, msg string) error {
	return c.Render(status, "login", Page{
		Title: "Đăng nhập hệ thống",
		CSRF:  middleware.CSRFToken(c),
		Data:  LoginView{Username: username, Error: msg},
	})
}

func loginStatus(err error) int {
	var authErr *domain.AuthenticationError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}
	var netErr *domain.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
