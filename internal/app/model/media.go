package model

import "strings"

// MediaKind tells audio and video apart. It only ever comes from the
// declared MIME type, never from the bytes.
type MediaKind string

const (
	MediaKindAudio MediaKind = "audio"
	MediaKindVideo MediaKind = "video"
)

// KindFromMIMEType derives the kind from the type prefix: "audio" is Audio,
// anything else is Video.
func KindFromMIMEType(mimeType string) MediaKind {
	if strings.HasPrefix(strings.ToLower(mimeType), "audio") {
		return MediaKindAudio
	}
	return MediaKindVideo
}

// MediaFile is a user-selected file. It is immutable once built; selecting
// another file replaces it wholesale.
type MediaFile struct {
	name     string
	mimeType string
	data     []byte
}

// NewMediaFile builds a MediaFile. The data slice is owned by the file from
// here on and must not be modified by the caller.
func NewMediaFile(name, mimeType string, data []byte) *MediaFile {
	return &MediaFile{name: name, mimeType: mimeType, data: data}
}

func (f *MediaFile) Name() string     { return f.name }
func (f *MediaFile) MIMEType() string { return f.mimeType }
func (f *MediaFile) Size() int64      { return int64(len(f.data)) }
func (f *MediaFile) Kind() MediaKind  { return KindFromMIMEType(f.mimeType) }

// Data returns the raw payload. Callers must treat it as read-only.
func (f *MediaFile) Data() []byte { return f.data }

// SizeMB is the size in mebibytes, as shown next to the file name.
func (f *MediaFile) SizeMB() float64 {
	return float64(f.Size()) / (1024 * 1024)
}

// FileInfo is the display view of a MediaFile.
type FileInfo struct {
	Name     string    `json:"name"`
	MIMEType string    `json:"mime_type"`
	Size     int64     `json:"size"`
	Kind     MediaKind `json:"kind"`
}

// Info returns the display view of the file.
func (f *MediaFile) Info() FileInfo {
	return FileInfo{
		Name:     f.name,
		MIMEType: f.mimeType,
		Size:     f.Size(),
		Kind:     f.Kind(),
	}
}
