package usecase

import (
	"context"
	"time"

	"study-planner/internal/session"
	"study-planner/pkg/datemath"
	"study-planner/pkg/gcalendar"
	pkgLog "study-planner/pkg/log"
)

// Calendar publishes deadlines as all-day events.
type Calendar interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of deadline.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	sessions   *session.Manager
	dateMath   *datemath.Parser
	calendar   Calendar
	calendarID string
	now        func() time.Time
}

// New creates a new deadline UseCase. calendar may be nil when calendar sync
// is not configured.
func New(
	l pkgLog.Logger,
	sessions *session.Manager,
	dateMath *datemath.Parser,
	calendar Calendar,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		sessions:   sessions,
		dateMath:   dateMath,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
