package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"booktracker/internal/config"
	"booktracker/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*app, http.Handler) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DataDir:            dir,
		CatalogFile:        "general.csv",
		UsersFile:          "users.txt",
		SessionFile:        "current_user.txt",
		JWTSecret:          testutil.TestSecret,
		TokenTTL:           time.Hour,
		AdminUsername:      "admin",
		AdminPassword:      "admin",
		ReadingTick:        time.Hour,
		RateLimitRPS:       1000,
		RateLimitBurst:     1000,
		CORSAllowedOrigins: []string{"*"},
		MaxBodyBytes:       1 << 20,
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	a, err := newApp(ctx, cfg)
	require.NoError(t, err)
	return a, a.routes()
}

func serve(h http.Handler, r *http.Request) testutil.RecordResponse {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return testutil.RecordHTTPResponse(w)
}

func login(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	res := serve(h, testutil.NewRequest(http.MethodPost, "/users/login", map[string]string{
		"username": username,
		"password": password,
	}))
	require.Equal(t, http.StatusOK, res.Code)
	token, _ := res.Data()["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouting_PublicAndProtected(t *testing.T) {
	_, h := newTestApp(t)

	res := serve(h, testutil.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))

	res = serve(h, testutil.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusOK, res.Code)

	res = serve(h, testutil.NewRequest(http.MethodGet, "/me/books", nil))
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = serve(h, testutil.NewRequest(http.MethodPost, "/books", map[string]string{"title": "Dune", "author": "Frank Herbert"}))
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = serve(h, testutil.NewRequestWithAuth(http.MethodGet, "/me", nil,
		testutil.GenerateExpiredToken(testutil.TestSecret, testutil.TestUsername, "USER")))
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestRouting_AdminOnlyCatalogWrites(t *testing.T) {
	_, h := newTestApp(t)

	userToken := testutil.GenerateTestToken(testutil.TestSecret, testutil.TestUsername, "USER")
	res := serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/books",
		map[string]string{"title": "Dune", "author": "Frank Herbert"}, userToken))
	assert.Equal(t, http.StatusForbidden, res.Code)

	adminToken := login(t, h, "admin", "admin")
	res = serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/books",
		map[string]string{"title": "Dune", "author": "Frank Herbert"}, adminToken))
	assert.Equal(t, http.StatusCreated, res.Code)

	res = serve(h, testutil.NewRequest(http.MethodGet, "/books/dune", nil))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Dune", res.Data()["title"])
}

func TestRouting_PersonalLibraryFlow(t *testing.T) {
	a, h := newTestApp(t)

	adminToken := login(t, h, "admin", "admin")
	res := serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/books",
		map[string]string{"title": "Dune", "author": "Frank Herbert"}, adminToken))
	require.Equal(t, http.StatusCreated, res.Code)

	res = serve(h, testutil.NewRequest(http.MethodPost, "/users/register",
		map[string]string{"username": "alice", "password": "pw"}))
	require.Equal(t, http.StatusCreated, res.Code)
	token := login(t, h, "alice", "pw")

	res = serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/me/books", map[string]string{"title": "dune"}, token))
	require.Equal(t, http.StatusCreated, res.Code)

	res = serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/me/books/Dune/rating", map[string]float64{"rating": 4}, token))
	assert.Equal(t, http.StatusOK, res.Code)

	res = serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/me/books/Dune/reviews", map[string]string{"text": "great"}, token))
	assert.Equal(t, http.StatusOK, res.Code)

	res = serve(h, testutil.NewRequestWithAuth(http.MethodPut, "/me/books/Dune/status", map[string]string{"status": "Ongoing"}, token))
	assert.Equal(t, http.StatusOK, res.Code)

	res = serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/me/books/Dune/reading", nil, token))
	assert.Equal(t, http.StatusCreated, res.Code)

	res = serve(h, testutil.NewRequestWithAuth(http.MethodGet, "/me/reading", nil, token))
	assert.Equal(t, http.StatusOK, res.Code)

	res = serve(h, testutil.NewRequestWithAuth(http.MethodGet, "/me/stats", nil, token))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(1), res.Data()["books_in_library"])
	assert.Equal(t, float64(1), res.Data()["ongoing"])

	res = serve(h, testutil.NewRequestWithAuth(http.MethodGet, "/books/Dune", nil, token))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(1), res.Data()["rating_count"])
	assert.Equal(t, []any{"alice: great"}, res.Data()["reviews"])

	res = serve(h, testutil.NewRequestWithAuth(http.MethodPost, "/users/logout", nil, token))
	assert.Equal(t, http.StatusNoContent, res.Code)

	_, err := a.tracker.Active("alice")
	assert.Error(t, err, "logout ends the reading session")

	lines := testutil.ReadFile(t, filepath.Join(a.cfg.DataDir, "alice.csv"))
	require.Len(t, lines, 1)
	assert.Equal(t, "Dune,Frank Herbert,Ongoing,0,", lines[0][:len("Dune,Frank Herbert,Ongoing,0,")])

	res = serve(h, testutil.NewRequestWithAuth(http.MethodGet, "/me/books", nil, token))
	assert.Equal(t, http.StatusUnauthorized, res.Code, "revoked token")
}

func TestApp_CloseSavesStores(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.close())

	lines := testutil.ReadFile(t, a.cfg.CatalogPath())
	assert.Equal(t, []string{"Title,Author,Average Rating,Rating Count,Reviews"}, lines)
}

func TestRoutes_HaveSwaggerAnnotations(t *testing.T) {
	src, err := os.ReadFile("app.go")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join("..", "..", "internal", "*", "http_handler.go"))
	require.NoError(t, err)
	var docs strings.Builder
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		docs.Write(data)
	}

	route := regexp.MustCompile(`router\.Handle(?:Func)?\("([A-Z]+) (/[^"]*)"`)
	matches := route.FindAllStringSubmatch(string(src), -1)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		method, path := m[1], m[2]
		if path == "/healthz" {
			continue
		}
		annotation := "// @Router " + path + " [" + strings.ToLower(method) + "]"
		assert.Contains(t, docs.String(), annotation, "%s %s", method, path)
	}
}
