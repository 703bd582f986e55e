package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/archdash/backend/internal/domain/catalog"
	"github.com/archdash/backend/internal/domain/sysinfo"
	"github.com/archdash/backend/internal/shared/types"
)

func newTestRouter(store *catalog.Store, probe *sysinfo.Probe, gateway *sysinfo.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(store, probe, gateway, nil, nil)

	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/api/entries", h.ListEntries)
	router.POST("/api/entries", h.CreateEntry)
	router.PATCH("/api/entries/:id", h.UpdateEntry)
	router.DELETE("/api/entries/:id", h.DeleteEntry)
	router.GET("/api/categories", h.ListCategories)
	router.GET("/api/stats", h.CatalogStats)
	router.GET("/api/users", h.ListUsers)
	router.POST("/api/users", h.CreateUser)
	router.DELETE("/api/users/:username", h.DeleteUser)
	router.POST("/api/script", h.GenerateScript)
	router.GET("/api/system-info", h.SystemInfo)
	router.GET("/api/system-info/cached", h.SystemInfoCached)
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRootAndHealth(t *testing.T) {
	router := newTestRouter(catalog.NewStore(), nil, nil)

	w := doRequest(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var root map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
	assert.Equal(t, "online", root["status"])
	assert.Equal(t, "ArchDash Backend", root["service"])

	w = doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestEntryLifecycle(t *testing.T) {
	router := newTestRouter(catalog.NewStore(), nil, nil)

	w := doRequest(router, http.MethodPost, "/api/entries", types.EntryInput{
		Name:        "Firefox",
		Category:    types.CategoryWebBrowsers,
		PackageName: "firefox",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created types.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Firefox", created.Name)
	assert.False(t, created.IsInstalled)

	// Patch it
	w = doRequest(router, http.MethodPatch, "/api/entries/"+created.ID, map[string]interface{}{
		"isInstalled": true,
		"notes":       "default browser",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var patched types.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.True(t, patched.IsInstalled)
	assert.Equal(t, "default browser", patched.Notes)
	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "Firefox", patched.Name)

	// Delete, then delete again
	w = doRequest(router, http.MethodDelete, "/api/entries/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":true`)

	w = doRequest(router, http.MethodDelete, "/api/entries/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":false`)
}

func TestCreateEntryValidation(t *testing.T) {
	router := newTestRouter(catalog.NewStore(), nil, nil)

	w := doRequest(router, http.MethodPost, "/api/entries", map[string]string{
		"category": "drivers",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestUpdateEntryNotFound(t *testing.T) {
	router := newTestRouter(catalog.NewStore(), nil, nil)

	w := doRequest(router, http.MethodPatch, "/api/entries/ent_missing", map[string]string{
		"name": "Whatever",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEntriesFilterAndSort(t *testing.T) {
	store := catalog.NewStore()
	seed := []types.EntryInput{
		{Name: "Firefox", Category: types.CategoryWebBrowsers, IsInstalled: true},
		{Name: "Chromium", Category: types.CategoryWebBrowsers},
		{Name: "Neovim", Category: types.CategoryTextEditors, IsInstalled: true},
	}
	for _, in := range seed {
		_, err := store.AddEntry(in)
		require.NoError(t, err)
	}
	router := newTestRouter(store, nil, nil)

	type listResponse struct {
		Entries []types.Entry `json:"entries"`
		Count   int           `json:"count"`
	}

	w := doRequest(router, http.MethodGet, "/api/entries?category=web-browsers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)

	w = doRequest(router, http.MethodGet, "/api/entries?status=installed", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)

	w = doRequest(router, http.MethodGet, "/api/entries?search=fire", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Firefox", resp.Entries[0].Name)

	w = doRequest(router, http.MethodGet, "/api/entries?sort=name&direction=desc", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "Neovim", resp.Entries[0].Name)
	assert.Equal(t, "Chromium", resp.Entries[2].Name)
}

func TestListCategories(t *testing.T) {
	router := newTestRouter(catalog.NewStore(), nil, nil)

	w := doRequest(router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []types.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 14)
	assert.Equal(t, types.CategoryDrivers, resp.Categories[0].ID)
	assert.Equal(t, types.CategoryCursorThemes, resp.Categories[13].ID)
}

func TestCatalogStats(t *testing.T) {
	store := catalog.NewStore()
	_, err := store.AddEntry(types.EntryInput{Name: "Firefox", Category: types.CategoryWebBrowsers, IsInstalled: true})
	require.NoError(t, err)
	router := newTestRouter(store, nil, nil)

	w := doRequest(router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats types.CatalogStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 1, stats.TotalInstalled)
	assert.Len(t, stats.Categories, 14)
}

func TestUserLifecycle(t *testing.T) {
	router := newTestRouter(catalog.NewStore(), nil, nil)

	w := doRequest(router, http.MethodPost, "/api/users", types.User{Username: "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate username is rejected
	w = doRequest(router, http.MethodPost, "/api/users", types.User{Username: "alice", IsRoot: true})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Users []types.User `json:"users"`
		Count int          `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "alice", resp.Users[0].Username)
	assert.False(t, resp.Users[0].IsRoot)

	w = doRequest(router, http.MethodDelete, "/api/users/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":true`)

	w = doRequest(router, http.MethodDelete, "/api/users/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":false`)
}

func TestGenerateScript(t *testing.T) {
	store := catalog.NewStore()
	_, err := store.AddEntry(types.EntryInput{
		Name:        "Firefox",
		Category:    types.CategoryWebBrowsers,
		PackageName: "firefox",
	})
	require.NoError(t, err)
	_, err = store.AddEntry(types.EntryInput{
		Name:        "Neovim",
		Category:    types.CategoryTextEditors,
		PackageName: "neovim",
	})
	require.NoError(t, err)
	router := newTestRouter(store, nil, nil)

	w := doRequest(router, http.MethodPost, "/api/script", map[string]interface{}{
		"categories": []string{"web-browsers"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Script   string `json:"script"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "arch-install-script.sh", resp.Filename)
	assert.Contains(t, resp.Script, "#!/bin/bash")
	assert.Contains(t, resp.Script, "# Web Browsers")
	assert.Contains(t, resp.Script, "sudo pacman -S --needed firefox")
	assert.NotContains(t, resp.Script, "neovim")

	// Empty selection includes everything
	w = doRequest(router, http.MethodPost, "/api/script", map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Script, "firefox")
	assert.Contains(t, resp.Script, "neovim")

	// So does a request with no body at all
	w = doRequest(router, http.MethodPost, "/api/script", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Script, "firefox")
	assert.Contains(t, resp.Script, "neovim")
}

func TestSystemInfoRelaySuccess(t *testing.T) {
	payload := `{"system":{"hostname":"archbox"},"users":["alice"]}`
	probe := sysinfo.NewProbe("printf '%s' '"+payload+"'", zap.NewNop())
	router := newTestRouter(catalog.NewStore(), probe, nil)

	w := doRequest(router, http.MethodGet, "/api/system-info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	// Probe output is relayed verbatim
	assert.Equal(t, payload, w.Body.String())
}

func TestSystemInfoRelayFailure(t *testing.T) {
	probe := sysinfo.NewProbe("exit 3", zap.NewNop())
	router := newTestRouter(catalog.NewStore(), probe, nil)

	w := doRequest(router, http.MethodGet, "/api/system-info", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to get system information", resp["error"])
}

func TestSystemInfoCachedSuccess(t *testing.T) {
	snapshot := types.FallbackSystemInfo()
	snapshot.System.Hostname = "archbox"
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(snapshot)
	}))
	defer upstream.Close()

	gateway := sysinfo.NewGateway(upstream.URL, zap.NewNop())
	router := newTestRouter(catalog.NewStore(), nil, gateway)

	w := doRequest(router, http.MethodGet, "/api/system-info/cached", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got types.SystemInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "archbox", got.System.Hostname)
}

func TestSystemInfoCachedFallback(t *testing.T) {
	gateway := sysinfo.NewGateway("http://127.0.0.1:1", zap.NewNop())
	router := newTestRouter(catalog.NewStore(), nil, gateway)

	w := doRequest(router, http.MethodGet, "/api/system-info/cached", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got types.SystemInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, types.FallbackSystemInfo(), got)
}
