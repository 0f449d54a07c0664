package handlers

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"

	"cn7-transcriptor/internal/api/errors"
	"cn7-transcriptor/internal/api/middleware"
	"cn7-transcriptor/internal/api/v1/dto"
	"cn7-transcriptor/internal/app/export"
	"cn7-transcriptor/internal/app/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// multipartOverhead is the room left above the upload cap for part headers
// and form fields.
const multipartOverhead = 64 << 10

// SessionHandler handles session endpoints
type SessionHandler struct {
	store          *session.Store
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewSessionHandler creates a new session handler. maxUploadBytes <= 0
// disables the size check.
func NewSessionHandler(store *session.Store, maxUploadBytes int64, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{
		store:          store,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Create handles POST /api/v1/sessions
// @Summary Open a session
// @Tags Sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	id, s := h.store.Create()
	c.JSON(http.StatusCreated, dto.NewSessionResponse(id, s.Snapshot()))
}

// Get handles GET /api/v1/sessions/:id
// @Summary Get session state
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} errors.APIError
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(c.Param("id"), s.Snapshot()))
}

// Delete handles DELETE /api/v1/sessions/:id
// @Summary Close a session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} errors.APIError
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectFile handles PUT /api/v1/sessions/:id/file
//
// A rejected type answers 415 and leaves the session as it was.
//
// @Summary Select the file to transcribe
// @Tags Sessions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "Audio or video file"
// @Param mime_type formData string false "Declared MIME type, overrides the part header"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} errors.APIError
// @Failure 413 {object} errors.APIError
// @Failure 415 {object} errors.APIError
// @Failure 422 {object} errors.APIError
// @Router /api/v1/sessions/{id}/file [put]
func (h *SessionHandler) SelectFile(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	var req dto.SelectFileRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			err = errors.NewPayloadTooLargeError(h.maxUploadBytes >> 20)
		}
		middleware.HandleError(c, h.logger, err)
		return
	}

	if h.maxUploadBytes > 0 && req.File.Size > h.maxUploadBytes {
		middleware.HandleError(c, h.logger, errors.NewPayloadTooLargeError(h.maxUploadBytes>>20))
		return
	}

	data, err := readUpload(&req)
	if err != nil {
		middleware.HandleError(c, h.logger, errors.NewBadRequestError("could not read uploaded file"))
		return
	}

	snap, err := s.SelectFile(req.File.Filename, req.DeclaredType(), data)
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(c.Param("id"), snap))
}

// RemoveFile handles DELETE /api/v1/sessions/:id/file
// @Summary Remove the selected file
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} errors.APIError
// @Router /api/v1/sessions/{id}/file [delete]
func (h *SessionHandler) RemoveFile(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(c.Param("id"), s.RemoveFile()))
}

// Transcribe handles POST /api/v1/sessions/:id/transcription
//
// The call blocks until the remote side answers. A failed transcription is
// a 200 with phase "failed"; only a call that could not start is an error.
// The remote call outlives a dropped client, which can poll the session for
// the result.
//
// @Summary Transcribe the selected file
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /api/v1/sessions/{id}/transcription [post]
func (h *SessionHandler) Transcribe(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	snap, err := s.StartTranscription(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSessionResponse(c.Param("id"), snap))
}

// Transcript handles GET /api/v1/sessions/:id/transcript
// @Summary Get the transcript text
// @Tags Sessions
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {string} string
// @Failure 404 {object} errors.APIError
// @Router /api/v1/sessions/{id}/transcript [get]
func (h *SessionHandler) Transcript(c *gin.Context) {
	text, ok := h.transcript(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, export.ContentType, []byte(text))
}

// Download handles GET /api/v1/sessions/:id/transcript/download
// @Summary Download the transcript as CN7_TRANSCRICAO.txt
// @Tags Sessions
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} errors.APIError
// @Router /api/v1/sessions/{id}/transcript/download [get]
func (h *SessionHandler) Download(c *gin.Context) {
	text, ok := h.transcript(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.ContentType, []byte(text))
}

func (h *SessionHandler) lookup(c *gin.Context) (*session.Session, bool) {
	s, err := h.store.Get(c.Param("id"))
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return nil, false
	}
	return s, true
}

func (h *SessionHandler) transcript(c *gin.Context) (string, bool) {
	s, ok := h.lookup(c)
	if !ok {
		return "", false
	}
	text, ok := s.Transcript()
	if !ok {
		middleware.HandleError(c, h.logger, errors.NewNotFoundError("transcript"))
		return "", false
	}
	return text, true
}

func readUpload(req *dto.SelectFileRequest) ([]byte, error) {
	f, err := req.File.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
