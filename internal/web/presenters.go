package web

import (
	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/view"
	"study-planner/pkg/response"
)

type pageData struct {
	View        string
	Views       []string
	Planned     bool
	Preferences string
	PlannedAt   string
	Error       string
	Page        view.Page
}

func (h *handler) newPageData(v view.View, state planner.StateOutput, page view.Page) pageData {
	data := pageData{
		View:        v.Name(),
		Views:       h.views.Names(),
		Planned:     state.Phase == model.PhasePlanned,
		Preferences: state.Preferences,
		Page:        page,
	}
	if !state.PlannedAt.IsZero() {
		data.PlannedAt = state.PlannedAt.Local().Format(response.DateTimeFormat)
	}
	return data
}
