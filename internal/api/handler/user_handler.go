package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/ports"
)

type UserHandler struct {
	svc ports.UserService
}

func NewUserHandler(svc ports.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UsersView is rendered by the users template.
type UsersView struct {
	*ports.UserList
	Query string
}

// List renders the user table filtered by ?q=.
func (h *UserHandler) List(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	list, err := h.svc.List(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "users", newPage(c, "Quản lý người dùng", UsersView{UserList: list, Query: query}))
}

// ToggleStatus activates or deactivates a user and returns to the table.
func (h *UserHandler) ToggleStatus(c echo.Context) error {
	if _, err := h.svc.ToggleStatus(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	target := "/users"
	if q := strings.TrimSpace(c.FormValue("q")); q != "" {
		target += "?" + url.Values{"q": {q}}.Encode()
	}
	return c.Redirect(http.StatusSeeOther, target)
}
