package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/waresmart/warehouse-console/pkg/logger"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	e, err := NewServer(Config{JWTSecret: testSecret, BcryptCost: bcrypt.MinCost, Quiet: true}, logger.Discard())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return e
}

func call(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := call(e, http.MethodPost, "/api/Authentication/Login", "", `{"userName":"`+username+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d %s", username, rec.Code, rec.Body.String())
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp.Token
}

func TestNewServer_RequiresSecret(t *testing.T) {
	if _, err := NewServer(Config{}, logger.Discard()); err == nil {
		t.Fatalf("expected error without secret")
	}
}

func TestLogin_DemoAccount(t *testing.T) {
	e := newTestServer(t)
	rec := call(e, http.MethodPost, "/api/Authentication/Login", "", `{"userName":"admin","password":"admin123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token == "" || resp.User.FullName != DemoFullName || resp.User.Role != "admin" || resp.User.Username != "admin" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestLogin_Rejections(t *testing.T) {
	e := newTestServer(t)
	cases := []struct {
		body   string
		status int
		msg    string
	}{
		{`{"userName":"admin","password":"wrong"}`, http.StatusUnauthorized, msgBadCredentials},
		{`{"userName":"ghost","password":"admin123"}`, http.StatusUnauthorized, msgBadCredentials},
		{`{"userName":"","password":""}`, http.StatusUnauthorized, msgBadCredentials},
		{`{"userName":"nv_banhang_02","password":"staff123"}`, http.StatusForbidden, msgAccountDisabled},
	}
	for _, tc := range cases {
		rec := call(e, http.MethodPost, "/api/Authentication/Login", "", tc.body)
		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.body, tc.status, rec.Code)
		}
		var resp messageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Message != tc.msg {
			t.Fatalf("%s: unexpected body %s", tc.body, rec.Body.String())
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)
	for _, path := range []string{"/api/Users", "/api/dashboard/stats"} {
		if rec := call(e, http.MethodGet, path, "", ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
		if rec := call(e, http.MethodGet, path, "not-a-jwt", ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 for bad token, got %d", path, rec.Code)
		}
	}
}

func TestUsersLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "admin", "admin123")

	rec := call(e, http.MethodGet, "/api/Users?search=kho", token, "")
	var list userListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if list.Total != 3 {
		t.Fatalf("expected admin, admin_kho and nv_kho_01, got %+v", list.Data)
	}

	rec = call(e, http.MethodPost, "/api/Users", token, `{"firstName":"Hoàng","lastName":"An","userName":"an_kho","email":"an@msparts.vn","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	var created userResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	if created.Role != "staff" || !created.IsActive || created.RoleLabel != "Nhân viên" {
		t.Fatalf("unexpected created user %+v", created)
	}

	if rec = call(e, http.MethodPost, "/api/Users", token, `{"firstName":"X","userName":"an_kho","password":"secret1"}`); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}
	if rec = call(e, http.MethodPost, "/api/Users", token, `{"userName":"x","email":"nope"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid: expected 400, got %d", rec.Code)
	}

	rec = call(e, http.MethodPatch, "/api/Users/"+created.ID+"/toggle-status", token, "")
	var toggled userResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &toggled)
	if rec.Code != http.StatusOK || toggled.IsActive {
		t.Fatalf("toggle: unexpected %d %+v", rec.Code, toggled)
	}

	if rec = call(e, http.MethodDelete, "/api/Users/"+created.ID, token, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec = call(e, http.MethodGet, "/api/Users/"+created.ID, token, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted: expected 404, got %d", rec.Code)
	}
}

func TestMutationsRequireAdmin(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "nv_kho_01", "staff123")

	if rec := call(e, http.MethodGet, "/api/Users", token, ""); rec.Code != http.StatusOK {
		t.Fatalf("staff list: expected 200, got %d", rec.Code)
	}
	if rec := call(e, http.MethodPatch, "/api/Users/1/toggle-status", token, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("staff toggle: expected 403, got %d", rec.Code)
	}
}

func TestDashboardEndpoints(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "admin", "admin123")

	if rec := call(e, http.MethodGet, "/api/dashboard/stats", token, ""); !strings.Contains(rec.Body.String(), `"totalInventory":24510`) {
		t.Fatalf("unexpected stats %s", rec.Body.String())
	}

	var points []map[string]any
	rec := call(e, http.MethodGet, "/api/dashboard/chart?period=30d", token, "")
	if err := json.Unmarshal(rec.Body.Bytes(), &points); err != nil || len(points) != 30 {
		t.Fatalf("expected 30 points, got %d (%v)", len(points), err)
	}
	if rec = call(e, http.MethodGet, "/api/dashboard/chart?period=1y", token, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad period, got %d", rec.Code)
	}

	var products []map[string]any
	rec = call(e, http.MethodGet, "/api/dashboard/top-products?limit=2", token, "")
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil || len(products) != 2 {
		t.Fatalf("expected 2 products, got %d (%v)", len(products), err)
	}
}

func TestSwaggerDoc(t *testing.T) {
	e := newTestServer(t)
	rec := call(e, http.MethodGet, "/swagger/doc.json", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/Authentication/Login") {
		t.Fatalf("expected swagger doc, got %d", rec.Code)
	}
}
