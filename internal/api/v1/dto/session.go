package dto

import (
	"mime/multipart"
	"strings"

	"cn7-transcriptor/internal/api/errors"
	"cn7-transcriptor/internal/app/model"
)

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID string `json:"id"`
	model.Snapshot
	// PreviewURL is set while a file is selected
	PreviewURL string `json:"preview_url,omitempty"`
}

// NewSessionResponse builds the response for a snapshot
func NewSessionResponse(id string, snap model.Snapshot) SessionResponse {
	resp := SessionResponse{ID: id, Snapshot: snap}
	if snap.PreviewHandle != "" {
		resp.PreviewURL = "/preview/" + snap.PreviewHandle
	}
	return resp
}

// SelectFileRequest is the multipart form for PUT /sessions/:id/file
type SelectFileRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
	// MIMEType overrides the type declared on the file part
	MIMEType string `form:"mime_type" binding:"max=255"`
}

// Validate performs domain-specific validation
func (r *SelectFileRequest) Validate() error {
	if strings.TrimSpace(r.File.Filename) == "" {
		return errors.NewValidationError("Invalid file", map[string]string{
			"file": "file name is required",
		})
	}
	return nil
}

// DeclaredType is the MIME type the client declared for the file
func (r *SelectFileRequest) DeclaredType() string {
	if r.MIMEType != "" {
		return r.MIMEType
	}
	return r.File.Header.Get("Content-Type")
}
