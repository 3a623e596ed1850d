package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/election-gateway/internal/config"
	"github.com/preston-bernstein/election-gateway/internal/http/handlers"
	"github.com/preston-bernstein/election-gateway/internal/testutil"
	"github.com/preston-bernstein/election-gateway/internal/upstream"
)

func testSession(uiDir string) config.SessionConfig {
	return config.SessionConfig{
		CookieName:      "admin_session",
		TokenCookieName: "admin_token",
		ProtectedPrefix: "/admin",
		LoginPath:       "/admin/login",
		UIDir:           uiDir,
	}
}

func newTestRouter(t *testing.T, api http.Handler, uiDir string) (http.Handler, *testutil.Upstream) {
	t.Helper()
	up := testutil.NewUpstream(t, api)
	client, err := upstream.NewClient(upstream.Config{BaseURL: up.URL + "/api", Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	h := handlers.NewHandler(client, nil, nil, "admin_token", nil)
	return NewRouter(h, RouterConfig{Session: testSession(uiDir)}), up
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router, _ := newTestRouter(t, testutil.JSON(http.StatusOK, `[]`), "")

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/api/towns", http.StatusOK},
		{http.MethodGet, "/api/towns/top-3", http.StatusOK},
		{http.MethodGet, "/api/towns/search", http.StatusBadRequest},
		{http.MethodGet, "/api/admin/towns", http.StatusOK},
		{http.MethodPost, "/api/towns", http.StatusMethodNotAllowed},
		{http.MethodGet, "/does-not-exist", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		testutil.AssertStatus(t, rr, tc.want)
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: expected request id header", tc.method, tc.path)
		}
	}
}

func TestRouterUnknownRouteReturnsJSONEnvelope(t *testing.T) {
	router, _ := newTestRouter(t, testutil.JSON(http.StatusOK, `[]`), "")

	rr := testutil.Serve(router, http.MethodGet, "/api/nope", nil)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] == "" {
		t.Fatalf("expected error envelope, got %v", body)
	}
}

func TestRouterPassesAdminIDToUpstream(t *testing.T) {
	var gotPath, gotMethod string
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		testutil.JSON(http.StatusNotFound, `{"error":"not found"}`)(w, r)
	}), "")

	rr := testutil.Serve(router, http.MethodPatch, "/api/admin/admins/42/toggle", nil)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if gotMethod != http.MethodPatch || gotPath != "/api/admin/admins/42/toggle" {
		t.Fatalf("unexpected upstream call %s %s", gotMethod, gotPath)
	}
}

func TestRouterRecoversPanicsWithEnvelope(t *testing.T) {
	// A nil gateway panics on first use.
	h := handlers.NewHandler(nil, nil, nil, "admin_token", nil)
	router := NewRouter(h, RouterConfig{Session: testSession("")})

	rr := testutil.Serve(router, http.MethodGet, "/api/towns", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != upstream.FallbackMessage {
		t.Fatalf("expected fallback envelope, got %v", body)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header on recovered response")
	}
}

func TestRouterDecodesAdminIDExactlyOnce(t *testing.T) {
	cases := []struct {
		target   string
		want     int
		wantPath string
	}{
		{"/api/admin/admins/a%2541", http.StatusNoContent, "/api/admin/admins/a%41"},
		{"/api/admin/admins/a%20b", http.StatusNoContent, "/api/admin/admins/a b"},
		{"/api/admin/admins/%C3%A9", http.StatusNoContent, "/api/admin/admins/é"},
		{"/api/admin/admins/a%2Fb", http.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		var gotPath string
		router, up := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}), "")

		rr := testutil.Serve(router, http.MethodDelete, tc.target, nil)

		testutil.AssertStatus(t, rr, tc.want)
		if tc.wantPath == "" {
			if up.Calls() != 0 {
				t.Fatalf("%s: expected no upstream call, got %d", tc.target, up.Calls())
			}
			continue
		}
		if gotPath != tc.wantPath {
			t.Fatalf("%s: upstream saw %q, want %q", tc.target, gotPath, tc.wantPath)
		}
	}
}

func TestRouterGatesAdminPages(t *testing.T) {
	router, up := newTestRouter(t, testutil.JSON(http.StatusOK, `[]`), "")

	rr := testutil.Serve(router, http.MethodGet, "/admin/towns", nil)
	testutil.AssertStatus(t, rr, http.StatusTemporaryRedirect)
	loc, _ := url.Parse(rr.Header().Get("Location"))
	if loc.Path != "/admin/login" || loc.Query().Get("from") != "/admin/towns" {
		t.Fatalf("unexpected redirect %s", rr.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/towns", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "x"})
	rr = testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(router, http.MethodGet, "/admin/login", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	if up.Calls() != 0 {
		t.Fatalf("admin pages must not call the external API, got %d calls", up.Calls())
	}
}

func TestRouterServesAdminUIDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>dashboard</h1>"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "login"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "login", "index.html"), []byte("<form>login</form>"), 0o600); err != nil {
		t.Fatal(err)
	}
	router, _ := newTestRouter(t, testutil.JSON(http.StatusOK, `[]`), dir)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "x"})
	rr := testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "dashboard") {
		t.Fatalf("expected index page, got %q", rr.Body.String())
	}

	rr = testutil.Serve(router, http.MethodGet, "/admin/login/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "login") {
		t.Fatalf("expected login page without session, got %q", rr.Body.String())
	}
}
