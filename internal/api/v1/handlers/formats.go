package handlers

import (
	"net/http"
	"strings"

	"cn7-transcriptor/internal/api/v1/dto"
	"cn7-transcriptor/internal/app/media"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// FormatsHandler reports what the service accepts
type FormatsHandler struct {
	maxUploadMB int64
}

func NewFormatsHandler(maxUploadMB int64) *FormatsHandler {
	return &FormatsHandler{maxUploadMB: maxUploadMB}
}

// List handles GET /api/v1/formats
// @Summary List accepted media types
// @Tags Formats
// @Produce json
// @Success 200 {object} dto.FormatsResponse
// @Router /api/v1/formats [get]
func (h *FormatsHandler) List(c *gin.Context) {
	types := media.AllowedMIMETypes()
	c.JSON(http.StatusOK, dto.FormatsResponse{
		MIMETypes: types,
		Audio: lo.Filter(types, func(t string, _ int) bool {
			return strings.HasPrefix(t, "audio/")
		}),
		Video: lo.Filter(types, func(t string, _ int) bool {
			return strings.HasPrefix(t, "video/")
		}),
		MaxUploadMB: h.maxUploadMB,
	})
}
