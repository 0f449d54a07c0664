package routes

import (
	"cn7-transcriptor/internal/api/v1/handlers"
	"github.com/gin-gonic/gin"
)

// Handlers holds the v1 handlers
type Handlers struct {
	Sessions *handlers.SessionHandler
	Formats  *handlers.FormatsHandler
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, h *Handlers) {
	router.GET("/formats", h.Formats.List)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.Sessions.Create)
		sessions.GET("/:id", h.Sessions.Get)
		sessions.DELETE("/:id", h.Sessions.Delete)

		sessions.PUT("/:id/file", h.Sessions.SelectFile)
		sessions.DELETE("/:id/file", h.Sessions.RemoveFile)

		sessions.POST("/:id/transcription", h.Sessions.Transcribe)
		sessions.GET("/:id/transcript", h.Sessions.Transcript)
		sessions.GET("/:id/transcript/download", h.Sessions.Download)
	}
}
