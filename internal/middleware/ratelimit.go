package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "study-planner/pkg/errors"
	"study-planner/pkg/response"
)

// PlanRateLimit limits plan generation per session. It must run after Session.
func (m Middleware) PlanRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := GetScope(c)
		if err := m.planLimiter.Allow(sc.SessionID); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.PlanRateLimit: %v", err)
			if strings.Contains(c.GetHeader("Accept"), "text/html") {
				c.String(http.StatusTooManyRequests, "Too many plan requests. Please wait a moment and try again.")
			} else {
				response.Error(c, pkgErrors.ErrTooManyRequests)
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 6
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
