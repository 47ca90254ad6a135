package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/checklist"
	deadlineUC "study-planner/internal/deadline/usecase"
	"study-planner/internal/middleware"
	"study-planner/internal/planner"
	plannerUC "study-planner/internal/planner/usecase"
	"study-planner/internal/session"
	"study-planner/internal/view"
	"study-planner/pkg/datemath"
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

type stubClient struct {
	text  string
	err   error
	calls int
}

func (s *stubClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", &planner.ServiceError{Err: s.err}
	}
	return s.text, nil
}

// browser posts forms and keeps the session cookie like a real one would.
type browser struct {
	t        *testing.T
	r        *gin.Engine
	sessions *session.Manager
	cookie   *http.Cookie
}

func newBrowser(t *testing.T, client planner.PlanClient) *browser {
	t.Helper()
	gin.SetMode(gin.TestMode)

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	l := &mockLogger{}
	sessions := session.NewManager(session.Config{})
	cl := checklist.New()
	views, err := view.NewRegistry(view.NameCombined, view.NewDashboard(parser, cl), view.NewCombined(parser, cl))
	require.NoError(t, err)

	dUC := deadlineUC.New(l, sessions, parser, nil, "").WithClock(clock)
	pUC := plannerUC.New(l, sessions, parser, client).WithClock(clock)
	mw := middleware.New(l, sessions, middleware.CookieConfig{Name: middleware.DefaultCookieName, MaxAge: time.Hour}, 60)

	h, err := New(l, dUC, pUC, sessions, views, middleware.DefaultCookieName)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group(""), h.WithClock(clock), mw)
	return &browser{t: t, r: r, sessions: sessions}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return b.send(req)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	return b.send(req)
}

func (b *browser) send(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			b.cookie = nil
		} else {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) mustRedirect(w *httptest.ResponseRecorder, location string) {
	b.t.Helper()
	require.Equal(b.t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(b.t, location, w.Header().Get("Location"))
}

func TestPlannerFlow(t *testing.T) {
	b := newBrowser(t, &stubClient{text: "Study **CS101** every morning."})

	w := b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Add Course")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	require.NotNil(t, b.cookie)

	b.mustRedirect(b.post("/deadlines", nil), "/")
	b.mustRedirect(b.post("/deadlines/0", url.Values{"course": {"CS101"}, "date": {"2024-06-01"}}), "/")

	b.mustRedirect(b.post("/plan", url.Values{"preferences": {"mornings only"}, "view": {"combined"}}), "/?view=combined")

	w = b.get("/?view=combined")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "CS101: 2024-06-01 (22 days left)")
	assert.Contains(t, body, "<strong>CS101</strong>")
	assert.Contains(t, body, `action="/deadlines/0/delete"`)
	assert.Contains(t, body, "mornings only")

	w = b.get("/?view=dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Upcoming Deadlines List")
}

func TestPlanProgress(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		not  string
	}{
		{"partly done", "- [x] Read chapter 1\n- [ ] Practice set", "1 of 2 plan items done", "Every plan item is done."},
		{"all done", "- [x] Read chapter 1\n- [X] Practice set", "Every plan item is done.", "plan items done"},
		{"no checkboxes", "Read a chapter a day.", "", "plan items done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrowser(t, &stubClient{text: tt.text})
			b.post("/deadlines", nil)
			b.mustRedirect(b.post("/plan", url.Values{"preferences": {"mornings"}}), "/")

			body := b.get("/").Body.String()
			if tt.want != "" {
				assert.Contains(t, body, tt.want)
			}
			assert.NotContains(t, body, tt.not)
		})
	}
}

func TestDeleteKeepsStalePlan(t *testing.T) {
	b := newBrowser(t, &stubClient{text: "Math first, then Art."})

	b.post("/deadlines", nil)
	b.post("/deadlines", nil)
	b.post("/deadlines/0", url.Values{"course": {"Math"}})
	b.post("/deadlines/1", url.Values{"course": {"Art"}})
	b.mustRedirect(b.post("/plan", url.Values{"preferences": {"evenings"}}), "/")

	b.mustRedirect(b.post("/deadlines/0/delete", url.Values{"view": {"combined"}}), "/?view=combined")

	body := b.get("/?view=combined").Body.String()
	assert.Contains(t, body, "Math first, then Art.")
	assert.Contains(t, body, `action="/deadlines/0/delete"`)
	assert.NotContains(t, body, `action="/deadlines/1/delete"`)
	assert.Contains(t, body, "Art: 2024-05-10")

	// The index bound before the removal is now stale.
	w := b.post("/deadlines/1/delete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no longer exists")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name      string
		client    *stubClient
		deadlines int
		prefs     string
		status    int
		message   string
	}{
		{"empty store", &stubClient{text: "x"}, 0, "mornings", http.StatusUnprocessableEntity, planner.ErrNoDeadlines.Error()},
		{"empty preferences", &stubClient{text: "x"}, 1, "", http.StatusUnprocessableEntity, planner.ErrEmptyPreferences.Error()},
		{"service failure", &stubClient{err: errors.New("bad token")}, 1, "mornings", http.StatusBadGateway, "could not be generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrowser(t, tt.client)
			b.get("/")
			for i := 0; i < tt.deadlines; i++ {
				b.post("/deadlines", nil)
			}

			w := b.post("/plan", url.Values{"preferences": {tt.prefs}})
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			assert.NotContains(t, w.Body.String(), "Study Plan Summary")
			if tt.deadlines == 0 || tt.prefs == "" {
				assert.Zero(t, tt.client.calls)
			}
		})
	}
}

func TestUpdateBadInput(t *testing.T) {
	b := newBrowser(t, &stubClient{})
	b.post("/deadlines", nil)

	assert.Equal(t, http.StatusBadRequest, b.post("/deadlines/0", url.Values{"date": {"someday"}}).Code)
	assert.Equal(t, http.StatusBadRequest, b.post("/deadlines/x", url.Values{"course": {"Math"}}).Code)
	assert.Equal(t, http.StatusNotFound, b.post("/deadlines/4", url.Values{"course": {"Math"}}).Code)
}

func TestReset(t *testing.T) {
	b := newBrowser(t, &stubClient{})
	b.post("/deadlines", nil)
	require.Equal(t, 1, b.sessions.Len())

	b.mustRedirect(b.post("/session/reset", nil), "/")
	assert.Nil(t, b.cookie)
	assert.Equal(t, 0, b.sessions.Len())

	w := b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Course Name 1")
}
