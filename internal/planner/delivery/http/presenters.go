package http

import (
	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/pkg/response"
)

// --- Request DTOs ---

type generateReq struct {
	Preferences string `json:"preferences"`
}

func (r generateReq) toInput() planner.GenerateInput {
	return planner.GenerateInput{Preferences: r.Preferences}
}

// --- Response DTOs ---

type generateResp struct {
	PlanText    string                    `json:"plan_text"`
	GeneratedAt response.DateTime         `json:"generated_at"`
	Deadlines   []model.FormattedDeadline `json:"deadlines"`
}

func (h *handler) newGenerateResp(out planner.GenerateOutput) generateResp {
	return generateResp{
		PlanText:    out.PlanText,
		GeneratedAt: response.DateTime(out.GeneratedAt),
		Deadlines:   out.Deadlines,
	}
}

type stateResp struct {
	Phase       model.Phase        `json:"phase"`
	Preferences string             `json:"preferences"`
	PlanText    string             `json:"plan_text,omitempty"`
	PlannedAt   *response.DateTime `json:"planned_at,omitempty"`
}

func (h *handler) newStateResp(out planner.StateOutput) stateResp {
	resp := stateResp{
		Phase:       out.Phase,
		Preferences: out.Preferences,
		PlanText:    out.PlanText,
	}
	if !out.PlannedAt.IsZero() {
		at := response.DateTime(out.PlannedAt)
		resp.PlannedAt = &at
	}
	return resp
}

type notifyResp struct {
	Messages int               `json:"messages"`
	SentAt   response.DateTime `json:"sent_at"`
}

func (h *handler) newNotifyResp(out planner.NotifyOutput) notifyResp {
	return notifyResp{Messages: out.Messages, SentAt: response.DateTime(out.SentAt)}
}
