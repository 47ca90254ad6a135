package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	deadlineUC "study-planner/internal/deadline/usecase"
	"study-planner/internal/middleware"
	"study-planner/internal/planner"
	plannerUC "study-planner/internal/planner/usecase"
	"study-planner/internal/session"
	"study-planner/pkg/datemath"
	"study-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Planner
	sessions    *session.Manager
	dateMath    *datemath.Parser
	planClient  planner.PlanClient
	defaultView string

	// Calendar sync (optional)
	calendar   deadlineUC.Calendar
	calendarID string

	// Telegram notifications (optional)
	messenger      plannerUC.Messenger
	telegramChatID int64

	// Middleware
	cookie              middleware.CookieConfig
	planRateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Sessions    *session.Manager
	DateMath    *datemath.Parser
	PlanClient  planner.PlanClient
	DefaultView string

	// Calendar is left nil when Google Calendar is not configured.
	Calendar   deadlineUC.Calendar
	CalendarID string

	// Messenger is left nil when Telegram is not configured.
	Messenger      plannerUC.Messenger
	TelegramChatID int64

	Cookie              middleware.CookieConfig
	PlanRateLimitPerMin int
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		sessions:            cfg.Sessions,
		dateMath:            cfg.DateMath,
		planClient:          cfg.PlanClient,
		defaultView:         cfg.DefaultView,
		calendar:            cfg.Calendar,
		calendarID:          cfg.CalendarID,
		messenger:           cfg.Messenger,
		telegramChatID:      cfg.TelegramChatID,
		cookie:              cfg.Cookie,
		planRateLimitPerMin: cfg.PlanRateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	if srv.planClient == nil {
		return errors.New("plan client is required")
	}
	return nil
}
