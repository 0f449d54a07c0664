// Package export writes finished transcripts for download.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/util/files"
)

// Filename is the fixed name of a downloaded transcript.
const Filename = "CN7_TRANSCRICAO.txt"

// ContentType is the media type a transcript is served with.
const ContentType = "text/plain; charset=utf-8"

// ResolvePath returns where a transcript should be written. An empty target
// means the current directory; an existing directory gets Filename inside it;
// anything else is used as the file path.
func ResolvePath(target string) string {
	if strings.TrimSpace(target) == "" {
		return Filename
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, Filename)
	}
	return target
}

// WriteTranscript writes text to the resolved path and returns it.
func WriteTranscript(target, text string) (string, error) {
	path := ResolvePath(target)
	if err := files.EnsureDir(filepath.Dir(path)); err != nil {
		return "", errors.Wrap(err, errors.ErrFileWriteFailed.Error())
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", errors.Wrap(err, errors.ErrFileWriteFailed.Error())
	}
	return path, nil
}
