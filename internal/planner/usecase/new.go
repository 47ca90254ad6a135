package usecase

import (
	"context"
	"time"

	"study-planner/internal/checklist"
	"study-planner/internal/planner"
	"study-planner/internal/session"
	"study-planner/pkg/datemath"
	pkgLog "study-planner/pkg/log"
	"study-planner/pkg/telegram"
)

// Messenger is the part of the Telegram bot Notify needs.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) (*telegram.Message, error)
}

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	sessions *session.Manager
	dateMath *datemath.Parser
	client   planner.PlanClient
	checks   checklist.Service
	now      func() time.Time

	messenger Messenger
	chatID    int64
}

// New creates a new planner UseCase.
func New(l pkgLog.Logger, sessions *session.Manager, dateMath *datemath.Parser, client planner.PlanClient) *implUseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		dateMath: dateMath,
		client:   client,
		checks:   checklist.New(),
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}

// WithMessenger enables Notify, sending plans to chatID.
func (uc *implUseCase) WithMessenger(m Messenger, chatID int64) *implUseCase {
	uc.messenger = m
	uc.chatID = chatID
	return uc
}
