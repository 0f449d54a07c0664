package handlers

import (
	"bytes"
	"net/http"
	"time"

	"cn7-transcriptor/internal/api/middleware"
	"cn7-transcriptor/internal/app/preview"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PreviewHandler serves the bytes behind a live preview handle
type PreviewHandler struct {
	previews *preview.Manager
	logger   *zap.Logger
}

func NewPreviewHandler(previews *preview.Manager, logger *zap.Logger) *PreviewHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreviewHandler{previews: previews, logger: logger}
}

// Serve handles GET /preview/:handle with range support. A released
// handle answers 404.
// @Summary Stream a selected file for playback
// @Tags Preview
// @Produce octet-stream
// @Param handle path string true "Preview handle"
// @Success 200 {file} file
// @Success 206 {file} file
// @Failure 404 {object} errors.APIError
// @Router /preview/{handle} [get]
func (h *PreviewHandler) Serve(c *gin.Context) {
	file, err := h.previews.Open(preview.Handle(c.Param("handle")))
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	c.Header("Content-Type", file.MIMEType())
	c.Header("Cache-Control", "no-store")
	http.ServeContent(c.Writer, c.Request, file.Name(), time.Time{}, bytes.NewReader(file.Data()))
}
