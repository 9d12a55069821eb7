// Package mockapi is a development stand-in for the warehouse REST backend.
// It serves the login, user and dashboard endpoints the console consumes so
// the console can run and be tested without the real service.
package mockapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/crypto/bcrypt"

	"github.com/waresmart/warehouse-console/internal/api/handler"
	"github.com/waresmart/warehouse-console/internal/api/middleware"
	"github.com/waresmart/warehouse-console/internal/core/domain"
	_ "github.com/waresmart/warehouse-console/internal/mockapi/docs"
)

// Config controls the mock backend.
type Config struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	// Quiet disables the request logger (tests).
	Quiet bool
}

// messageResponse mirrors the backend's error body.
type messageResponse struct {
	Message string `json:"message"`
}

// NewServer builds the Echo instance with all mock routes under /api.
func NewServer(cfg Config, log zerolog.Logger) (*echo.Echo, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("mock backend: jwt secret is required")
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	accounts, err := NewAccountStore(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}
	auth := NewAuthenticator(accounts, cfg.JWTSecret, cfg.TokenTTL)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = newErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if !cfg.Quiet {
		e.Use(echomiddleware.Logger())
	}

	h := &handlers{accounts: accounts, auth: auth, log: log}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", handler.NewHealthHandler().Liveness)

	apiGroup := e.Group("/api")
	apiGroup.POST("/Authentication/Login", h.login)

	secured := apiGroup.Group("", Auth(cfg.JWTSecret))
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	secured.GET("/Users", h.listUsers)
	secured.GET("/Users/:id", h.getUser)
	secured.POST("/Users", h.createUser, adminOnly)
	secured.PUT("/Users/:id", h.updateUser, adminOnly)
	secured.PATCH("/Users/:id/toggle-status", h.toggleUser, adminOnly)
	secured.DELETE("/Users/:id", h.deleteUser, adminOnly)

	secured.GET("/dashboard/stats", h.stats)
	secured.GET("/dashboard/chart", h.chart)
	secured.GET("/dashboard/top-products", h.topProducts)

	return e, nil
}

func newErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal server error"

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code, msg = he.Code, fmt.Sprintf("%v", he.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			code, msg = http.StatusNotFound, "Không tìm thấy người dùng"
		case errors.Is(err, ErrUsernameTaken):
			code, msg = http.StatusConflict, "Tên đăng nhập đã tồn tại"
		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}
