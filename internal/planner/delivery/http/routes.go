package http

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plan := rg.Group("/plan", mw.Session())
	{
		plan.GET("", h.State)
		plan.POST("", mw.PlanRateLimit(), h.Generate)
		plan.POST("/notify", h.Notify)
	}
}
