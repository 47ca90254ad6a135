package web

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
)

// RegisterRoutes mounts the HTML page and its form actions. Every action
// answers with a 303 to the page, so the browser re-renders with fresh indices.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.StaticFS("/static", h.static)

	page := rg.Group("", securityHeaders(), mw.Session())
	{
		page.GET("/", h.Index)
		page.POST("/deadlines", h.Add)
		page.POST("/deadlines/:index", h.Update)
		page.POST("/deadlines/:index/delete", h.Remove)
		page.POST("/plan", mw.PlanRateLimit(), h.Generate)
		page.POST("/session/reset", h.Reset)
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'self'; style-src 'self'; base-uri 'none'; frame-ancestors 'none'")
		c.Next()
	}
}
