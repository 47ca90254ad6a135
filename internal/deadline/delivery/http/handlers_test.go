package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/deadline/usecase"
	"study-planner/internal/middleware"
	"study-planner/internal/session"
	"study-planner/pkg/datemath"
	"study-planner/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type apiClient struct {
	t      *testing.T
	r      *gin.Engine
	cookie *http.Cookie
}

func (a *apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		a.cookie = cookies[0]
	}
	return w
}

type failingCalendar struct {
	calls  int
	failAt int
}

func (f *failingCalendar) CreateAllDayEvent(ctx context.Context, req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error) {
	f.calls++
	if f.calls == f.failAt {
		return nil, errors.New("googleapi: Error 403: quota exceeded")
	}
	return &gcalendar.Event{ID: "evt"}, nil
}

func newAPIClient(t *testing.T, cal usecase.Calendar) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	l := &mockLogger{}
	sessions := session.NewManager(session.Config{})
	uc := usecase.New(l, sessions, parser, cal, "").WithClock(func() time.Time { return now })
	mw := middleware.New(l, sessions, middleware.CookieConfig{MaxAge: time.Hour}, 60)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), mw)
	return &apiClient{t: t, r: r}
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestDeadlineAPI(t *testing.T) {
	api := newAPIClient(t, nil)

	w := api.do(http.MethodPost, "/api/v1/deadlines", "")
	require.Equal(t, http.StatusOK, w.Code)
	var added itemDetailResp
	decode(t, w, &added)
	assert.Equal(t, itemResp{Index: 0, Date: "2024-05-10", DaysRemaining: -1}, added.Item)

	w = api.do(http.MethodPost, "/api/v1/deadlines", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/v1/deadlines/1", `{"course":"Chemistry","date":"2024-05-20"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated itemDetailResp
	decode(t, w, &updated)
	assert.Equal(t, itemResp{Index: 1, Course: "Chemistry", Date: "2024-05-20", DaysRemaining: 9}, updated.Item)

	w = api.do(http.MethodDelete, "/api/v1/deadlines/0", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/v1/deadlines", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list listResp
	decode(t, w, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 0, list.Items[0].Index)
	assert.Equal(t, "Chemistry", list.Items[0].Course)
	assert.Equal(t, "editing", string(list.Phase))

	w = api.do(http.MethodGet, "/api/v1/deadlines/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "deadlines.json")
	var exported struct {
		Deadlines []struct {
			Course string `json:"course"`
			Date   string `json:"date"`
		} `json:"deadlines"`
	}
	decode(t, w, &exported)
	require.Len(t, exported.Deadlines, 1)
	assert.Equal(t, "2024-05-20", exported.Deadlines[0].Date)
}

func TestDeadlineAPIErrors(t *testing.T) {
	api := newAPIClient(t, nil)
	api.do(http.MethodPost, "/api/v1/deadlines", "")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"stale index", http.MethodDelete, "/api/v1/deadlines/3", "", http.StatusNotFound},
		{"negative index", http.MethodDelete, "/api/v1/deadlines/-1", "", http.StatusBadRequest},
		{"non numeric index", http.MethodPut, "/api/v1/deadlines/abc", `{"course":"x"}`, http.StatusBadRequest},
		{"bad date", http.MethodPut, "/api/v1/deadlines/0", `{"date":"whenever"}`, http.StatusBadRequest},
		{"broken json", http.MethodPut, "/api/v1/deadlines/0", `{"course":`, http.StatusBadRequest},
		{"nothing to update", http.MethodPut, "/api/v1/deadlines/0", `{}`, http.StatusBadRequest},
		{"calendar not configured", http.MethodPost, "/api/v1/deadlines/calendar", "", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			env := decode(t, w, nil)
			assert.NotZero(t, env.ErrorCode)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestSyncCalendarPartialFailure(t *testing.T) {
	cal := &failingCalendar{failAt: 2}
	api := newAPIClient(t, cal)
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/deadlines", "").Code)
	}

	w := api.do(http.MethodPost, "/api/v1/deadlines/calendar", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	env := decode(t, w, nil)
	assert.Contains(t, env.Message, "1 event(s) were created")
	assert.NotContains(t, env.Message, "quota")
	assert.Equal(t, 2, cal.calls)
}
