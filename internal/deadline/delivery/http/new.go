package http

import (
	"study-planner/internal/deadline"
	"study-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc deadline.UseCase
}

// New creates a new HTTP handler for the deadline domain.
func New(l log.Logger, uc deadline.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
