package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/pkg/logger"
)

func TestHTTPErrorHandler_JSON(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{&domain.AuthenticationError{Message: "bad"}, http.StatusUnauthorized, "bad"},
		{&domain.NetworkError{Op: "login", Err: errors.New("timeout")}, http.StatusBadGateway, "Không thể kết nối tới máy chủ. Vui lòng thử lại."},
		{domain.ErrUserNotFound, http.StatusNotFound, "Không tìm thấy người dùng."},
		{echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{errors.New("secret detail"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(logger.Discard())
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/session", nil), rec)
		handler(tc.err, c)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.Error != tc.msg {
			t.Fatalf("%v: message = %q", tc.err, resp.Error)
		}
	}
}

func TestHTTPErrorHandler_HTML(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec)
	NewHTTPErrorHandler(logger.Discard())(&domain.NetworkError{Op: "users.list", StatusCode: 500, Message: "database offline"}, c)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Fatalf("expected HTML, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "database offline") {
		t.Fatalf("expected server message in page:\n%s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_Committed(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/session", nil), rec)
	_ = c.NoContent(http.StatusTeapot)

	NewHTTPErrorHandler(logger.Discard())(errors.New("late"), c)
	if rec.Code != http.StatusTeapot || rec.Body.Len() != 0 {
		t.Fatalf("committed response must not be rewritten")
	}
}
