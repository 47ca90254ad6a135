package http

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route works on the caller's session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deadlines := rg.Group("/deadlines", mw.Session())
	{
		deadlines.GET("", h.List)
		deadlines.POST("", h.Add)
		deadlines.GET("/export", h.Export)
		deadlines.POST("/calendar", h.SyncCalendar)
		deadlines.PUT("/:index", h.Update)
		deadlines.DELETE("/:index", h.Remove)
	}
}
