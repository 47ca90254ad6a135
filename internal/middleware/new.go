package middleware

import (
	"time"

	"study-planner/internal/session"
	"study-planner/pkg/log"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type Middleware struct {
	l            log.Logger
	sessions     *session.Manager
	cookieConfig CookieConfig
	planLimiter  *rateLimiter
}

func New(l log.Logger, sessions *session.Manager, cookieConfig CookieConfig, planRateLimitPerMin int) Middleware {
	if cookieConfig.Name == "" {
		cookieConfig.Name = DefaultCookieName
	}
	return Middleware{
		l:            l,
		sessions:     sessions,
		cookieConfig: cookieConfig,
		planLimiter:  newRateLimiter(planRateLimitPerMin),
	}
}
