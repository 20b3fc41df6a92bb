package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"skillmap_backend/internal/config"
	"skillmap_backend/internal/repository"
	"skillmap_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "debug"},
		Storage:   config.StorageConfig{Type: config.StorageMemory, Key: service.DefaultStorageKey},
		JWT:       config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage, err := service.NewStorageService(cfg)
	require.NoError(t, err)

	app, err := Build(cfg, storage)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func serve(app *App, method, path string, body []byte, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, testConfig())

	w := serve(app, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Status     string `json:"status"`
			Components struct {
				Storage  string `json:"storage"`
				Roadmaps int    `json:"roadmaps"`
			} `json:"components"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Data.Status)
	assert.Equal(t, config.StorageMemory, resp.Data.Components.Storage)
	assert.Equal(t, 0, resp.Data.Components.Roadmaps)
}

func TestLoginAndProfile(t *testing.T) {
	app := newTestApp(t, testConfig())

	w := serve(app, http.MethodGet, "/api/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(app, http.MethodPost, "/api/login", []byte(`{"name":"Ada","email":"ada@example.com"}`), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)

	w = serve(app, http.MethodGet, "/api/profile", nil, http.Header{"Authorization": {"Bearer " + login.Data.Token}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")

	w = serve(app, http.MethodGet, "/api/profile", nil, http.Header{"Authorization": {"Bearer not-a-token"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(app, http.MethodPost, "/api/login", []byte(`{"name":"Ada","email":"not-an-email"}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddResourceRecordsLoggedInUser(t *testing.T) {
	app := newTestApp(t, testConfig())

	roadmap, err := app.Store.Create(context.Background(), service.CreateRoadmapRequest{Profession: "ux designer", Deadline: 6}.Goal())
	require.NoError(t, err)

	w := serve(app, http.MethodPost, "/api/login", []byte(`{"name":"Grace","email":"grace@example.com"}`), nil)
	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	path := "/api/roadmaps/" + roadmap.ID + "/skills/" + roadmap.Skills[0].ID + "/resources"
	w = serve(app, http.MethodPost, path, []byte(`{"title":"Figma tips","url":"https://example.com/figma"}`),
		http.Header{"Authorization": {"Bearer " + login.Data.Token}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"addedBy":"Grace"`)
}

func TestRoadmapLifecycleThroughRouter(t *testing.T) {
	app := newTestApp(t, testConfig())

	w := serve(app, http.MethodPost, "/api/roadmaps", []byte(`{"profession":"Data Scientist","deadline":12}`), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, app.Store.Count())

	w = serve(app, http.MethodGet, "/api/roadmaps/current", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(app, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "skillmap_roadmaps_total")
	assert.Contains(t, w.Body.String(), `skillmap_store_events_total{kind="created"}`)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, testConfig())

	w := serve(app, http.MethodGet, "/api/nothing-here", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resource not found")
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t, testConfig())

	w := serve(app, http.MethodOptions, "/api/roadmaps", nil, http.Header{"Origin": {"http://localhost:3000"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(app, http.MethodGet, "/api/health", nil, http.Header{"Origin": {"http://evil.example"}})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestBuild_CorruptStorageStartsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	blob := repository.NewMemoryBlobRepository()
	require.NoError(t, blob.Set(context.Background(), cfg.Storage.Key, "not json"))

	app, err := Build(cfg, &service.StorageService{Blob: blob, Type: config.StorageMemory})
	require.NoError(t, err)
	defer app.Close()

	assert.Zero(t, app.Store.Count())
}

func TestBuild_LoadsExistingRoadmaps(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.Storage.Type = config.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()

	storage, err := service.NewStorageService(cfg)
	require.NoError(t, err)
	first, err := Build(cfg, storage)
	require.NoError(t, err)
	_, err = first.Store.Create(context.Background(), service.CreateRoadmapRequest{Profession: "chef", Deadline: 3}.Goal())
	require.NoError(t, err)
	first.Close()

	storage, err = service.NewStorageService(cfg)
	require.NoError(t, err)
	second, err := Build(cfg, storage)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, 1, second.Store.Count())
}

func TestBuild_InvalidCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(cfg.Catalog.Path, []byte("professions: [\n"), 0644))

	storage, err := service.NewStorageService(cfg)
	require.NoError(t, err)

	_, err = Build(cfg, storage)
	assert.Error(t, err)
}

func TestApplyConfigUpdatesRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.MaxRequests = 1
	app := newTestApp(t, cfg)

	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/api/health", nil, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(app, http.MethodGet, "/api/health", nil, nil).Code)

	updated := *cfg
	updated.RateLimit.MaxRequests = 100
	app.applyConfig(&updated)

	// 新访问者按新的突发上限放行
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
