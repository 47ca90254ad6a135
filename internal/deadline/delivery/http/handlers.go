package http

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
	"study-planner/pkg/response"
)

// List godoc
// @Summary     List deadlines
// @Description Returns the session's deadlines in entry order. Indices are valid until the next change.
// @Tags        Deadlines
// @Produce     json
// @Success     200 {object} listResp
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add a deadline
// @Description Appends an empty deadline due today.
// @Tags        Deadlines
// @Produce     json
// @Success     200 {object} itemDetailResp
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Add(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddResp(output))
}

// Update godoc
// @Summary     Update a deadline
// @Description Edits the course, the date or both for the deadline at index. At least one is required. Date accepts YYYY-MM-DD or phrases like "next friday".
// @Tags        Deadlines
// @Accept      json
// @Produce     json
// @Param       index path int       true "Deadline index"
// @Param       body  body updateReq true "Fields to update"
// @Success     200 {object} itemDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - stale index"
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Router      /api/v1/deadlines/{index} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Remove godoc
// @Summary     Delete a deadline
// @Description Removes the deadline at index; later deadlines move up by one. The current plan is kept.
// @Tags        Deadlines
// @Produce     json
// @Param       index path int true "Deadline index"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found - stale index"
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Router      /api/v1/deadlines/{index} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	idx, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Remove(ctx, middleware.GetScope(c), idx); err != nil {
		h.l.Warnf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Export godoc
// @Summary     Export deadlines
// @Description Downloads the deadlines with YYYY-MM-DD dates as a JSON file.
// @Tags        Deadlines
// @Produce     json
// @Success     200 {object} exportResp
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Router      /api/v1/deadlines/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Export(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, "deadlines.json", h.newExportResp(output))
}

// SyncCalendar godoc
// @Summary     Sync deadlines to Google Calendar
// @Description Creates one all-day event per deadline in the configured calendar.
// @Tags        Deadlines
// @Produce     json
// @Success     200 {object} syncCalendarResp
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     502 {object} response.Resp "Google Calendar rejected an event; earlier events were created"
// @Failure     503 {object} response.Resp "Calendar sync is not configured"
// @Router      /api/v1/deadlines/calendar [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SyncCalendar(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncCalendarResp(output))
}
