package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		}
	}
}
