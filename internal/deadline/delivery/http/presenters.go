package http

import (
	"study-planner/internal/deadline"
	"study-planner/internal/model"
	"study-planner/pkg/response"
)

// --- Request DTOs ---

type indexReq struct {
	Index int `uri:"index" binding:"min=0"`
}

type updateReq struct {
	Index  int     `json:"-"` // populated from URI param
	Course *string `json:"course"`
	Date   *string `json:"date"`
}

func (r updateReq) validate() error {
	if r.Course == nil && r.Date == nil {
		return deadline.ErrEmptyUpdate
	}
	return nil
}

func (r updateReq) toInput() deadline.UpdateInput {
	return deadline.UpdateInput{
		Index:  r.Index,
		Course: r.Course,
		Date:   r.Date,
	}
}

// --- Response DTOs ---

type itemResp struct {
	Index         int    `json:"index"`
	Course        string `json:"course"`
	Date          string `json:"date"`
	DaysRemaining int    `json:"days_remaining"`
}

func newItemResp(item deadline.Item) itemResp {
	return itemResp{
		Index:         item.Index,
		Course:        item.Course,
		Date:          item.Date,
		DaysRemaining: item.DaysRemaining,
	}
}

type itemDetailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newAddResp(out deadline.AddOutput) itemDetailResp {
	return itemDetailResp{Item: newItemResp(out.Item)}
}

func (h *handler) newUpdateResp(out deadline.UpdateOutput) itemDetailResp {
	return itemDetailResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items []itemResp  `json:"items"`
	Total int         `json:"total"`
	Phase model.Phase `json:"phase"`
}

func (h *handler) newListResp(out deadline.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items: items,
		Total: len(items),
		Phase: out.Phase,
	}
}

type exportResp struct {
	Deadlines  []model.FormattedDeadline `json:"deadlines"`
	ExportedAt response.DateTime         `json:"exported_at"`
}

func (h *handler) newExportResp(out deadline.ExportOutput) exportResp {
	return exportResp{
		Deadlines:  out.Deadlines,
		ExportedAt: response.DateTime(out.ExportedAt),
	}
}

type syncCalendarResp struct {
	Created int      `json:"created"`
	Links   []string `json:"links"`
}

func (h *handler) newSyncCalendarResp(out deadline.SyncCalendarOutput) syncCalendarResp {
	return syncCalendarResp{Created: out.Created, Links: out.Links}
}
