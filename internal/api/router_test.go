package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/waresmart/warehouse-console/internal/api/middleware"
	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
	"github.com/waresmart/warehouse-console/internal/core/service"
	"github.com/waresmart/warehouse-console/internal/infrastructure/storage"
	"github.com/waresmart/warehouse-console/pkg/logger"
)

type stubGateway struct{}

func (stubGateway) Login(_ context.Context, username, password string) (*domain.Credentials, error) {
	if username == "admin" && password == "admin123" {
		return &domain.Credentials{
			Token:    "t1",
			Identity: domain.Identity{Username: "admin", FullName: "Admin Kho", Role: domain.RoleAdmin},
		}, nil
	}
	if username == "pascal" {
		return &domain.Credentials{Token: "t3", Identity: domain.Identity{Username: "pascal", Role: "Admin"}}, nil
	}
	if username == "staff" {
		return &domain.Credentials{Token: "t2", Identity: domain.Identity{Username: "staff", Role: domain.RoleStaff}}, nil
	}
	return nil, &domain.AuthenticationError{Message: "Sai tên đăng nhập hoặc mật khẩu"}
}

type failingDirectory struct{}

func (failingDirectory) List(context.Context, string) ([]domain.User, error) {
	return nil, &domain.NetworkError{Op: "users.list"}
}
func (failingDirectory) Get(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (failingDirectory) Create(context.Context, domain.UserInput) (*domain.User, error) {
	return nil, &domain.NetworkError{Op: "users.create"}
}
func (failingDirectory) Update(context.Context, string, domain.UserInput) (*domain.User, error) {
	return nil, &domain.NetworkError{Op: "users.update"}
}
func (failingDirectory) ToggleStatus(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (failingDirectory) Delete(context.Context, string) error { return domain.ErrUserNotFound }

type failingDashboard struct{}

func (failingDashboard) Stats(context.Context) (*domain.DashboardStats, error) {
	return nil, &domain.NetworkError{Op: "dashboard.stats"}
}
func (failingDashboard) Chart(context.Context, string) ([]domain.ChartPoint, error) {
	return nil, &domain.NetworkError{Op: "dashboard.chart"}
}
func (failingDashboard) TopProducts(context.Context, int) ([]domain.TopProduct, error) {
	return nil, &domain.NetworkError{Op: "dashboard.top"}
}

type console struct {
	e        *echo.Echo
	sessions *service.SessionContext
	kv       *storage.MemoryKV
	// csrf is the browser's token cookie, replayed like a same-origin form.
	csrf string
}

func newConsole(t *testing.T, initialize bool) *console {
	t.Helper()
	log := logger.Discard()
	kv := storage.NewMemoryKV()
	sessions := service.NewSessionContext(storage.NewSessionStore(kv, log), stubGateway{}, log)
	if initialize {
		sessions.Initialize(context.Background())
	}

	reg := prometheus.NewRegistry()
	e, err := NewRouter(Dependencies{
		Sessions:   sessions,
		Users:      service.NewUserService(failingDirectory{}, true, log),
		Dashboard:  service.NewDashboardService(failingDashboard{}, true, log),
		Log:        log,
		Registerer: reg,
		Gatherer:   reg,
	})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return &console{e: e, sessions: sessions, kv: kv}
}

func newRequest(method, target, body, contentType string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	return req
}

// do sends a request the way the console's own pages would: with the token
// cookie and, for unsafe methods, the matching token header.
func (c *console) do(method, target string, body string, contentType string) *httptest.ResponseRecorder {
	req := newRequest(method, target, body, contentType)
	if method != http.MethodGet && method != http.MethodHead {
		if c.csrf == "" {
			c.send(httptest.NewRequest(http.MethodGet, "/health", nil))
		}
		req.Header.Set(middleware.CSRFHeader, c.csrf)
	}
	return c.send(req)
}

func (c *console) send(req *http.Request) *httptest.ResponseRecorder {
	if c.csrf != "" {
		req.AddCookie(&http.Cookie{Name: "_csrf", Value: c.csrf})
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "_csrf" {
			c.csrf = ck.Value
		}
	}
	return rec
}

func (c *console) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	return c.do(http.MethodPost, "/login", form.Encode(), echo.MIMEApplicationForm)
}

func TestRouter_InterstitialBeforeInitialize(t *testing.T) {
	c := newConsole(t, false)
	for _, path := range []string{"/", "/login", "/users"} {
		rec := c.do(http.MethodGet, path, "", "")
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Đang kiểm tra đăng nhập") {
			t.Fatalf("%s: expected interstitial, got %d", path, rec.Code)
		}
	}
}

func TestRouter_AnonymousRedirects(t *testing.T) {
	c := newConsole(t, true)
	for _, path := range []string{"/", "/users", "/products", "/does-not-exist"} {
		rec := c.do(http.MethodGet, path, "", "")
		if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %d %q", path, rec.Code, rec.Header().Get(echo.HeaderLocation))
		}
	}

	rec := c.do(http.MethodGet, "/login", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `name="username"`) {
		t.Fatalf("expected login form, got %d", rec.Code)
	}
}

func TestRouter_LoginFlow(t *testing.T) {
	c := newConsole(t, true)

	rec := c.login(t, "admin", "wrong")
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "Sai tên đăng nhập hoặc mật khẩu") {
		t.Fatalf("expected rejected login page, got %d", rec.Code)
	}
	if c.sessions.Session().IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}

	rec = c.login(t, "admin", "admin123")
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("expected redirect after login, got %d", rec.Code)
	}
	if token, _ := c.kv.Get(context.Background(), ports.KeyAccessToken); token != "t1" {
		t.Fatalf("stored token = %q", token)
	}

	rec = c.do(http.MethodGet, "/", "", "")
	body := rec.Body.String()
	if rec.Code != http.StatusOK || !strings.Contains(body, "Admin Kho") || !strings.Contains(body, "24.510") {
		t.Fatalf("expected dashboard with mock stats, got %d\n%s", rec.Code, body)
	}

	rec = c.do(http.MethodGet, "/login", "", "")
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("logged-in user should be sent away from /login, got %d", rec.Code)
	}

	rec = c.do(http.MethodPost, "/logout", "", "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect after logout, got %d", rec.Code)
	}
	if c.kv.Len() != 0 {
		t.Fatalf("expected cleared storage")
	}
	if rec = c.do(http.MethodGet, "/", "", ""); rec.Code != http.StatusFound {
		t.Fatalf("dashboard must redirect after logout, got %d", rec.Code)
	}
}

func TestRouter_PagesWhenLoggedIn(t *testing.T) {
	c := newConsole(t, true)
	c.login(t, "admin", "admin123")

	rec := c.do(http.MethodGet, "/users?q=kho", "", "")
	body := rec.Body.String()
	if rec.Code != http.StatusOK || !strings.Contains(body, "admin_kho") || strings.Contains(body, "nv_banhang_02") {
		t.Fatalf("unexpected users page %d\n%s", rec.Code, body)
	}

	rec = c.do(http.MethodGet, "/settings", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Chức năng đang được phát triển") {
		t.Fatalf("expected placeholder, got %d", rec.Code)
	}

	rec = c.do(http.MethodGet, "/nowhere", "", "")
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("expected catch-all redirect, got %d", rec.Code)
	}

	rec = c.do(http.MethodPost, "/users/9/toggle-status", "", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Không tìm thấy người dùng") {
		t.Fatalf("expected HTML 404, got %d", rec.Code)
	}
}

func TestRouter_ToggleRequiresAdmin(t *testing.T) {
	c := newConsole(t, true)
	c.login(t, "staff", "x")

	rec := c.do(http.MethodPost, "/users/1/toggle-status", "", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff, got %d", rec.Code)
	}
}

func TestRouter_SessionAPI(t *testing.T) {
	c := newConsole(t, true)

	rec := c.do(http.MethodPost, "/api/session", `{"username":"admin","password":"nope"}`, echo.MIMEApplicationJSON)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var errResp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil || errResp.Error != "Sai tên đăng nhập hoặc mật khẩu" {
		t.Fatalf("unexpected error body %s", rec.Body.String())
	}

	rec = c.do(http.MethodPost, "/api/session", `{"username":"admin","password":"admin123"}`, echo.MIMEApplicationJSON)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"isAuthenticated":true`) {
		t.Fatalf("unexpected login response %d %s", rec.Code, rec.Body.String())
	}

	rec = c.do(http.MethodDelete, "/api/session", "", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = c.do(http.MethodGet, "/api/session", "", "")
	if !strings.Contains(rec.Body.String(), `"isAuthenticated":false`) {
		t.Fatalf("unexpected session %s", rec.Body.String())
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	c := newConsole(t, true)

	if rec := c.do(http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness = %d", rec.Code)
	}
	if rec := c.do(http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness = %d", rec.Code)
	}
	rec := c.do(http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "waresmart_console_requests_total") {
		t.Fatalf("expected request metrics, got %d\n%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ToggleAcceptsPascalCaseAdmin(t *testing.T) {
	c := newConsole(t, true)
	c.login(t, "pascal", "x")

	rec := c.do(http.MethodPost, "/users/1/toggle-status", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected the directory's 404 past RBAC, got %d", rec.Code)
	}
	rec = c.do(http.MethodGet, "/", "", "")
	if !strings.Contains(rec.Body.String(), "Quản trị viên") {
		t.Fatalf("expected admin label in header")
	}
}

// countingDirectory records toggles.
type countingDirectory struct {
	failingDirectory
	toggled []string
}

func (d *countingDirectory) ToggleStatus(_ context.Context, id string) (*domain.User, error) {
	d.toggled = append(d.toggled, id)
	return &domain.User{ID: id}, nil
}

func TestRouter_RejectsCrossSiteMutations(t *testing.T) {
	log := logger.Discard()
	sessions := service.NewSessionContext(storage.NewSessionStore(storage.NewMemoryKV(), log), stubGateway{}, log)
	sessions.Initialize(context.Background())
	if _, err := sessions.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	dir := &countingDirectory{}
	reg := prometheus.NewRegistry()
	e, err := NewRouter(Dependencies{
		Sessions:   sessions,
		Users:      service.NewUserService(dir, false, log),
		Dashboard:  service.NewDashboardService(failingDashboard{}, true, log),
		Log:        log,
		Registerer: reg,
		Gatherer:   reg,
	})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	c := &console{e: e, sessions: sessions}

	cases := []struct {
		name    string
		headers map[string]string
	}{
		{"foreign origin", map[string]string{echo.HeaderOrigin: "https://evil.example"}},
		{"cross-site fetch", map[string]string{"Sec-Fetch-Site": "cross-site"}},
		{"same-site sibling", map[string]string{"Sec-Fetch-Site": "same-site"}},
		{"opaque origin", map[string]string{echo.HeaderOrigin: "null"}},
	}
	for _, tc := range cases {
		// Even a valid token does not help a request the browser marks as foreign.
		req := newRequest(http.MethodPost, "/users/42/toggle-status", "", "")
		if c.csrf == "" {
			c.send(httptest.NewRequest(http.MethodGet, "/health", nil))
		}
		req.Header.Set(middleware.CSRFHeader, c.csrf)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		if rec := c.send(req); rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", tc.name, rec.Code)
		}
	}

	for _, target := range []string{"/api/session", "/logout"} {
		req := newRequest(http.MethodDelete, target, "", "")
		if target == "/logout" {
			req.Method = http.MethodPost
		}
		req.Header.Set(echo.HeaderOrigin, "https://evil.example")
		if rec := c.send(req); rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", target, rec.Code)
		}
	}

	if len(dir.toggled) != 0 || !sessions.Session().IsAuthenticated() {
		t.Fatalf("cross-site requests changed state: toggled=%v", dir.toggled)
	}

	req := newRequest(http.MethodPost, "/users/42/toggle-status", "", "")
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set(middleware.CSRFHeader, c.csrf)
	if rec := c.send(req); rec.Code != http.StatusSeeOther || len(dir.toggled) != 1 {
		t.Fatalf("same-origin toggle: got %d toggled=%v", rec.Code, dir.toggled)
	}
}

func TestRouter_FormsRequireCSRFToken(t *testing.T) {
	c := newConsole(t, true)
	c.login(t, "admin", "admin123")

	// Forged token without the matching cookie.
	req := newRequest(http.MethodPost, "/logout", "", "")
	req.Header.Set(middleware.CSRFHeader, "forged")
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("forged token: expected 403, got %d", rec.Code)
	}

	// Missing token entirely.
	rec = httptest.NewRecorder()
	c.e.ServeHTTP(rec, newRequest(http.MethodPost, "/users/1/toggle-status", "", ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing token: expected 400, got %d", rec.Code)
	}

	if !c.sessions.Session().IsAuthenticated() {
		t.Fatalf("logout must not run without a token")
	}

	rec = c.do(http.MethodGet, "/users", "", "")
	if !strings.Contains(rec.Body.String(), `name="_csrf" value="`+c.csrf+`"`) {
		t.Fatalf("users page should embed the form token")
	}
}
