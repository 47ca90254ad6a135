package session

import (
	"sync"
	"time"

	"study-planner/internal/deadline/repository"
	"study-planner/internal/model"
)

// Session is the state of one planner user, from first visit until reset or
// idle expiry. Fields other than ID and Deadlines may only be touched while
// the session is held through Manager.Acquire.
type Session struct {
	ID        string
	CreatedAt time.Time
	Deadlines repository.Repository

	mu          sync.Mutex
	preferences string
	planText    string
	plannedAt   time.Time
}

func (s *Session) Preferences() string {
	return s.preferences
}

func (s *Session) SetPreferences(p string) {
	s.preferences = p
}

// Plan returns the last generated plan text and when it was produced.
func (s *Session) Plan() (string, time.Time) {
	return s.planText, s.plannedAt
}

// SetPlan stores plan text from a successful generation.
func (s *Session) SetPlan(text string, at time.Time) {
	s.planText = text
	s.plannedAt = at
}

// ClearPlan drops the plan text, returning the session to editing.
func (s *Session) ClearPlan() {
	s.planText = ""
	s.plannedAt = time.Time{}
}

// Phase is PhasePlanned while plan text is held. Deadline edits do not
// change it, so the plan may be stale relative to the store.
func (s *Session) Phase() model.Phase {
	if s.planText != "" {
		return model.PhasePlanned
	}
	return model.PhaseEditing
}

// Config configures a Manager.
type Config struct {
	MaxSessions int
	TTL         time.Duration
}
