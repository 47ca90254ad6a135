package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBusy     = errors.New("a study plan is being generated for this session")
)
