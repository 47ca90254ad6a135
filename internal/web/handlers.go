package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"study-planner/internal/deadline"
	"study-planner/internal/middleware"
	"study-planner/internal/planner"
)

// Index renders the page with the view named by ?view=, or the default view.
func (h *handler) Index(c *gin.Context) {
	h.renderPage(c, http.StatusOK, c.Query("view"), "")
}

func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.deadlineUC.Add(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.renderError(c, err)
		return
	}
	h.redirectHome(c)
}

func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	idx, err := processIndex(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	input := deadline.UpdateInput{Index: idx}
	if course, ok := c.GetPostForm("course"); ok {
		input.Course = &course
	}
	if date, ok := c.GetPostForm("date"); ok && date != "" {
		input.Date = &date
	}

	if _, err := h.deadlineUC.Update(ctx, middleware.GetScope(c), input); err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		h.renderError(c, err)
		return
	}
	h.redirectHome(c)
}

func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	idx, err := processIndex(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.deadlineUC.Remove(ctx, middleware.GetScope(c), idx); err != nil {
		h.l.Warnf(ctx, "uc.Remove: %v", err)
		h.renderError(c, err)
		return
	}
	h.redirectHome(c)
}

func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	_, err := h.plannerUC.Generate(ctx, middleware.GetScope(c), planner.GenerateInput{
		Preferences: c.PostForm("preferences"),
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.Generate: %v", err)
		h.renderError(c, err)
		return
	}
	h.redirectHome(c)
}

// Reset discards the session and expires its cookie.
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(c)
	if h.sessions.Reset(sc.SessionID) {
		h.l.Infof(ctx, "web.Reset: session discarded")
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// redirectHome sends the browser back to the page, keeping the view the form was posted from.
func (h *handler) redirectHome(c *gin.Context) {
	target := "/"
	if v := c.PostForm("view"); v != "" {
		target += "?view=" + url.QueryEscape(v)
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (h *handler) renderError(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	h.renderPage(c, status, c.PostForm("view"), msg)
}

func (h *handler) renderPage(c *gin.Context, status int, viewName, errMsg string) {
	ctx := c.Request.Context()

	state, err := h.plannerUC.State(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Warnf(ctx, "uc.State: %v", err)
		code, msg := h.mapError(err)
		c.String(code, msg)
		return
	}

	v := h.views.Get(viewName)
	page, err := v.Render(state.Records, state.PlanText, h.now())
	if err != nil {
		h.l.Errorf(ctx, "web.renderPage: %s.Render: %v", v.Name(), err)
		code, msg := h.mapError(err)
		c.String(code, msg)
		return
	}

	data := h.newPageData(v, state, page)
	data.Error = errMsg
	c.Render(status, render.HTML{Template: h.tmpl, Name: pageTemplate, Data: data})
}

func processIndex(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return 0, errInvalidIndex
	}
	return idx, nil
}
