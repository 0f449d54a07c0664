// Package media decides whether a selected file may be previewed and
// transcribed. The decision uses the declared MIME type only; a mislabeled
// file passes or fails on its label, which is an accepted limitation.
package media

import (
	"mime"
	"path/filepath"
	"strings"

	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/model"
	"github.com/samber/lo"
)

var allowedMIMETypes = []string{
	"audio/mp3", "audio/wav", "audio/mpeg", "audio/x-m4a", "audio/ogg", "audio/aac",
	"video/mp4", "video/mpeg", "video/mov", "video/avi", "video/webm",
}

// extension to declared type, for callers that have a path but no browser
// to declare the type for them
var extensionMIMETypes = map[string]string{
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".m4a":  "audio/x-m4a",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".aac":  "audio/aac",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".mov":  "video/mov",
	".avi":  "video/avi",
	".webm": "video/webm",
}

// AllowedMIMETypes returns a copy of the allow-list.
func AllowedMIMETypes() []string {
	return append([]string(nil), allowedMIMETypes...)
}

// Normalize lower-cases the declared type and strips parameters such as
// "; codecs=opus".
func Normalize(mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mediaType
	}
	return strings.ToLower(mimeType)
}

// IsAllowed reports whether the declared type is in the allow-list.
func IsAllowed(mimeType string) bool {
	return lo.Contains(allowedMIMETypes, Normalize(mimeType))
}

// Validate classifies an allowed type or returns a RejectedFormat failure.
func Validate(mimeType string) (model.MediaKind, error) {
	normalized := Normalize(mimeType)
	if !lo.Contains(allowedMIMETypes, normalized) {
		return "", errors.RejectedFormat(mimeType)
	}
	return model.KindFromMIMEType(normalized), nil
}

// NewMediaFile validates the declared type and builds the file. Nothing is
// built for a rejected type.
func NewMediaFile(name, mimeType string, data []byte) (*model.MediaFile, error) {
	if _, err := Validate(mimeType); err != nil {
		return nil, err
	}
	return model.NewMediaFile(name, Normalize(mimeType), data), nil
}

// MIMETypeFromFilename maps a file extension to the type a browser would
// declare for it. Unknown extensions yield "".
func MIMETypeFromFilename(path string) string {
	return extensionMIMETypes[strings.ToLower(filepath.Ext(path))]
}
