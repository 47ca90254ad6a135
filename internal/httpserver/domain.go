package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"study-planner/internal/checklist"
	"study-planner/internal/deadline"
	deadlineHTTP "study-planner/internal/deadline/delivery/http"
	deadlineUC "study-planner/internal/deadline/usecase"
	"study-planner/internal/middleware"
	"study-planner/internal/planner"
	plannerHTTP "study-planner/internal/planner/delivery/http"
	plannerUC "study-planner/internal/planner/usecase"
	"study-planner/internal/view"
	"study-planner/internal/web"
)

// setupDeadlineDomain registers /api/v1/deadlines.
func (srv HTTPServer) setupDeadlineDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) deadline.UseCase {
	uc := deadlineUC.New(srv.l, srv.sessions, srv.dateMath, srv.calendar, srv.calendarID)

	h := deadlineHTTP.New(srv.l, uc)
	deadlineHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Google Calendar not configured, calendar sync answers 503")
	}
	srv.l.Infof(ctx, "Deadline domain registered")
	return uc
}

// setupPlannerDomain registers /api/v1/plan.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) planner.UseCase {
	uc := plannerUC.New(srv.l, srv.sessions, srv.dateMath, srv.planClient)
	if srv.messenger != nil {
		uc.WithMessenger(srv.messenger, srv.telegramChatID)
	} else {
		srv.l.Infof(ctx, "Telegram not configured, plan notifications answer 503")
	}

	h := plannerHTTP.New(srv.l, uc)
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return uc
}

// setupWebDomain registers the HTML page at / and its form actions.
func (srv HTTPServer) setupWebDomain(ctx context.Context, deadlines deadline.UseCase, plans planner.UseCase, mw middleware.Middleware) error {
	cl := checklist.New()
	views, err := view.NewRegistry(srv.defaultView,
		view.NewDashboard(srv.dateMath, cl),
		view.NewCombined(srv.dateMath, cl),
	)
	if err != nil {
		return err
	}

	h, err := web.New(srv.l, deadlines, plans, srv.sessions, views, srv.cookie.Name)
	if err != nil {
		return err
	}
	web.RegisterRoutes(srv.gin.Group(""), h, mw)

	srv.l.Infof(ctx, "Web page registered at GET /")
	return nil
}
