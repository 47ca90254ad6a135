package http

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
	"study-planner/pkg/response"
)

// Generate godoc
// @Summary     Generate a study plan
// @Description Saves the preferences and asks the language model for a plan covering every deadline in the session.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Study preferences"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request - no deadlines or empty preferences"
// @Failure     409 {object} response.Resp "Conflict - a plan is already being generated"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Plan service unavailable"
// @Router      /api/v1/plan [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// State godoc
// @Summary     Get plan state
// @Description Returns the session phase, the saved preferences and the last generated plan.
// @Tags        Plan
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Router      /api/v1/plan [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.State(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.State: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Notify godoc
// @Summary     Send the plan to Telegram
// @Description Sends the current plan and its deadlines to the configured Telegram chat.
// @Tags        Plan
// @Produce     json
// @Success     200 {object} notifyResp
// @Failure     400 {object} response.Resp "Bad Request - no plan yet"
// @Failure     409 {object} response.Resp "Conflict - a plan is being generated"
// @Failure     502 {object} response.Resp "Telegram rejected the message"
// @Failure     503 {object} response.Resp "Telegram is not configured"
// @Router      /api/v1/plan/notify [POST]
func (h *handler) Notify(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Notify(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Warnf(ctx, "uc.Notify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNotifyResp(output))
}
