package http

import (
	"github.com/gin-gonic/gin"

	"notice-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The convert
// route is rate limited per client because OCR and model calls are expensive.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	notices := rg.Group("/notices")
	{
		notices.POST("/convert", mw.RateLimit(), h.Convert)
		notices.POST("/analyze", h.Analyze)
		notices.POST("/schedule", h.Schedule)
	}
}
