package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsadmin/database"
	"cmsadmin/infrastructure/config"
	"cmsadmin/infrastructure/repositories"
	"cmsadmin/logging"
)

type testServer struct {
	router http.Handler
	deps   *Dependencies
	seed   *repositories.SeedResult
	cfg    *config.AppConfig
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := logging.NewLogger(&logging.Config{Level: "error", Format: "text", Output: "discard"})
	logging.SetDefault(logger)

	cfg := &config.AppConfig{
		Database: &database.Config{
			Path:              filepath.Join(t.TempDir(), "cms.db"),
			MaxOpenConns:      4,
			MaxIdleConns:      2,
			BusyTimeoutMs:     5000,
			EnableForeignKeys: true,
			EnableWAL:         true,
		},
		Logging: &logging.Config{Level: "error", Format: "text", Output: "discard"},
		Content: &config.ContentConfig{DefaultPageSize: 30, DecorationConcurrency: 4, RequestTimeout: 5 * time.Second},
		Session: &config.SessionConfig{CookieName: "cms_admin_session", TTL: time.Hour},
	}

	db, err := database.New(*cfg.Database, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	seed, err := repositories.NewDemoSeeder(db).Seed(t.Context())
	require.NoError(t, err)

	deps := buildDependencies(db, logger, cfg)
	return &testServer{router: setupRoutes(deps, cfg), deps: deps, seed: seed, cfg: cfg}
}

func (s *testServer) token(t *testing.T, adminID int64) string {
	t.Helper()
	session, err := s.deps.Services.Auth.IssueSession(t.Context(), adminID, time.Hour)
	require.NoError(t, err)
	return session.Token
}

func (s *testServer) list(token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, contentListRoute, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type listResponse struct {
	PageContents []struct {
		ID          int64             `json:"id"`
		ChannelID   int64             `json:"channelId"`
		Sequence    int               `json:"sequence"`
		Values      map[string]string `json:"values"`
		PluginMenus []struct {
			Text string `json:"text"`
		} `json:"pluginMenus"`
	} `json:"pageContents"`
	Total         int  `json:"total"`
	PageSize      int  `json:"pageSize"`
	IsAllContents bool `json:"isAllContents"`
	Columns       []struct {
		AttributeName string `json:"attributeName"`
	} `json:"columns"`
	CheckedLevels []struct {
		Value int `json:"value"`
	} `json:"checkedLevels"`
	Permissions map[string]bool `json:"permissions"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestContentList_Anonymous(t *testing.T) {
	s := newTestServer(t)

	w := s.list("", fmt.Sprintf(`{"siteId":%d,"channelId":%d}`, s.seed.SiteID, s.seed.NewsChannelID))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContentList_SuperAdminSecondPage(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, s.seed.SuperAdminID)

	resp := decodeList(t, s.list(token, fmt.Sprintf(`{"siteId":%d,"channelId":%d,"page":2}`, s.seed.SiteID, s.seed.RootChannelID)))

	// Home aggregates News and Events: 30 contents, 20 per page
	assert.Equal(t, 30, resp.Total)
	assert.Equal(t, 20, resp.PageSize)
	assert.True(t, resp.IsAllContents)
	require.Len(t, resp.PageContents, 10)
	assert.Equal(t, 21, resp.PageContents[0].Sequence)
	assert.Equal(t, 30, resp.PageContents[9].Sequence)
	assert.NotEmpty(t, resp.PageContents[0].Values["ChannelId"])
	assert.True(t, resp.Permissions["isCreate"])
	assert.True(t, resp.Permissions["isChannelEdit"])
	assert.Len(t, resp.CheckedLevels, 7)
}

func TestContentList_EditorInheritsRootGrants(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, s.seed.EditorID)

	resp := decodeList(t, s.list(token, fmt.Sprintf(`{"siteId":%d,"channelId":%d,"page":1}`, s.seed.SiteID, s.seed.NewsChannelID)))

	assert.Equal(t, 15, resp.Total)
	require.Len(t, resp.PageContents, 15)
	assert.Equal(t, map[string]bool{
		"isAdd": true, "isDelete": false, "isEdit": false, "isArrange": false,
		"isTranslate": false, "isCheck": false, "isCreate": false, "isChannelEdit": false,
	}, resp.Permissions)

	// News enables the statistics and preview plugins
	last := resp.Columns[len(resp.Columns)-1]
	assert.Equal(t, "preview:WordCount", last.AttributeName)
	require.Len(t, resp.PageContents[0].PluginMenus, 2)
	assert.Equal(t, "Statistics", resp.PageContents[0].PluginMenus[0].Text)
	assert.Equal(t, "8", resp.PageContents[0].Values["preview:WordCount"])
}

func TestContentList_Search(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, s.seed.EditorID)

	resp := decodeList(t, s.list(token, fmt.Sprintf(
		`{"siteId":%d,"channelId":%d,"isAdvanced":true,"groupNames":["Featured"]}`,
		s.seed.SiteID, s.seed.EventChannelID)))

	assert.Equal(t, 8, resp.Total)
	assert.Len(t, resp.PageContents, 8)
}

func TestContentList_Errors(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, s.seed.SuperAdminID)

	missingSite := s.list(token, fmt.Sprintf(`{"siteId":%d,"channelId":%d}`, s.seed.SiteID+100, s.seed.NewsChannelID))
	assert.Equal(t, http.StatusNotFound, missingSite.Code)

	missingChannel := s.list(token, fmt.Sprintf(`{"siteId":%d,"channelId":%d}`, s.seed.SiteID, 9999))
	assert.Equal(t, http.StatusBadRequest, missingChannel.Code)
	assert.Contains(t, missingChannel.Body.String(), "cannot determine the channel for this content")

	malformed := s.list(token, `{"siteId":`)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("Content-Type"))
}
