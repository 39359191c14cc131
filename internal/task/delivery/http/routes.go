package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All task routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.POST("/parse", mw.Auth(), h.Parse)
		tasks.GET("", mw.Auth(), h.List)
		tasks.PATCH("/:id/complete", mw.Auth(), h.Complete)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
