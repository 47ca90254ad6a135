package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/session"
	"study-planner/pkg/datemath"
	"study-planner/pkg/log"
)

type stubPlanClient struct{}

func (stubPlanClient) Generate(ctx context.Context, prompt string) (string, error) {
	return "plan", nil
}

func newConfig(t *testing.T) Config {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Sessions:    session.NewManager(session.Config{}),
		DateMath:    parser,
		PlanClient:  stubPlanClient{},
		DefaultView: "combined",
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"missing port", func(c *Config) { c.Port = 0 }},
		{"missing mode", func(c *Config) { c.Mode = "" }},
		{"missing sessions", func(c *Config) { c.Sessions = nil }},
		{"missing parser", func(c *Config) { c.DateMath = nil }},
		{"missing plan client", func(c *Config) { c.PlanClient = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(t)
			tt.modify(&cfg)
			_, err := New(log.NewNop(), cfg)
			assert.Error(t, err)
		})
	}

	cfg := newConfig(t)
	cfg.DefaultView = "grid"
	_, err := New(log.NewNop(), cfg)
	assert.Error(t, err, "unknown default view")
}

func TestRoutes(t *testing.T) {
	srv, err := New(log.NewNop(), newConfig(t))
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/static/app.css", http.StatusOK},
		{http.MethodGet, "/api/v1/deadlines", http.StatusOK},
		{http.MethodGet, "/api/v1/plan", http.StatusOK},
		{http.MethodPost, "/api/v1/deadlines/calendar", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/v1/plan/notify", http.StatusServiceUnavailable},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestReadyCheck(t *testing.T) {
	cfg := newConfig(t)
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	cfg.Sessions.Create()

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Status   string `json:"status"`
			Sessions int    `json:"sessions"`
			Calendar bool   `json:"calendar"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Data.Status)
	assert.Equal(t, 1, body.Data.Sessions)
	assert.False(t, body.Data.Calendar)
}
