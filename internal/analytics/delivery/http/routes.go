package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All analytics routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/stats", mw.Auth(), h.Stats)
		analytics.GET("/insights", mw.Auth(), h.Insights)
		analytics.GET("/patterns", mw.Auth(), h.Patterns)
	}
}
