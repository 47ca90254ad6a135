// Package web serves the planner as a server-rendered HTML form.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"study-planner/internal/deadline"
	"study-planner/internal/middleware"
	"study-planner/internal/planner"
	"study-planner/internal/session"
	"study-planner/internal/view"
	"study-planner/pkg/log"
)

//go:embed templates static
var assets embed.FS

const pageTemplate = "index.html"

type handler struct {
	l          log.Logger
	deadlineUC deadline.UseCase
	plannerUC  planner.UseCase
	sessions   *session.Manager
	views      *view.Registry
	cookieName string
	tmpl       *template.Template
	static     http.FileSystem
	now        func() time.Time
}

// New parses the embedded templates and creates the HTML handler.
func New(l log.Logger, deadlineUC deadline.UseCase, plannerUC planner.UseCase, sessions *session.Manager, views *view.Registry, cookieName string) (*handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	if cookieName == "" {
		cookieName = middleware.DefaultCookieName
	}

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	return &handler{
		l:          l,
		deadlineUC: deadlineUC,
		plannerUC:  plannerUC,
		sessions:   sessions,
		views:      views,
		cookieName: cookieName,
		tmpl:       tmpl,
		static:     http.FS(static),
		now:        time.Now,
	}, nil
}

// WithClock replaces the wall clock used for days-left, for tests.
func (h *handler) WithClock(now func() time.Time) *handler {
	h.now = now
	return h
}
