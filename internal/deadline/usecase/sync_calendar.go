package usecase

import (
	"context"
	"strings"

	"study-planner/internal/deadline"
	"study-planner/internal/model"
	"study-planner/pkg/gcalendar"
)

// SyncCalendar creates one all-day event per deadline. It stops at the first
// failure and reports how many events were created before it.
func (uc *implUseCase) SyncCalendar(ctx context.Context, sc model.Scope) (deadline.SyncCalendarOutput, error) {
	if uc.calendar == nil {
		return deadline.SyncCalendarOutput{}, deadline.ErrCalendarNotConfigured
	}

	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return deadline.SyncCalendarOutput{}, err
	}
	defer release()

	all, err := sess.Deadlines.All(ctx)
	if err != nil {
		return deadline.SyncCalendarOutput{}, err
	}

	var out deadline.SyncCalendarOutput
	for _, d := range all {
		event, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.CreateAllDayEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     eventSummary(d.Course),
			Description: "Added by study-planner",
			Date:        d.Date,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.deadline.usecase.SyncCalendar: CreateAllDayEvent: %v", err)
			return out, &deadline.CalendarSyncError{Created: out.Created, Err: err}
		}
		out.Created++
		out.Links = append(out.Links, event.HtmlLink)
	}

	uc.l.Infof(ctx, "internal.deadline.usecase.SyncCalendar: created %d event(s)", out.Created)
	return out, nil
}

func eventSummary(course string) string {
	course = strings.TrimSpace(course)
	if course == "" {
		return "Course deadline"
	}
	return course + " deadline"
}
