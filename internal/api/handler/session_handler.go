package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
)

// SessionHandler exposes the session contract as JSON under /api/session.
type SessionHandler struct {
	sessions ports.SessionContext
}

func NewSessionHandler(sessions ports.SessionContext) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type sessionResponse struct {
	Identity        *domain.Identity `json:"identity"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	IsLoading       bool             `json:"isLoading"`
}

func toSessionResponse(s domain.Session) sessionResponse {
	return sessionResponse{
		Identity:        s.Identity,
		IsAuthenticated: s.IsAuthenticated(),
		IsLoading:       s.IsLoading,
	}
}

// Get returns the current session.
func (h *SessionHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Session()))
}

// Create logs in with a JSON body. Failures go through the HTTP error
// handler, which maps them to 401 or 502.
func (h *SessionHandler) Create(c echo.Context) error {
	var req loginForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.sessions.Login(c.Request().Context(), req.Username, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Session()))
}

// Delete logs out. It always succeeds.
func (h *SessionHandler) Delete(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
