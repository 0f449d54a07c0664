// Package session holds the state of one user's transcription session: the
// selected file, its preview handle and the transcription lifecycle.
package session

import (
	"context"
	"sync"

	"cn7-transcriptor/internal/app/api"
	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/media"
	"cn7-transcriptor/internal/app/model"
	"cn7-transcriptor/internal/app/preview"
	"go.uber.org/zap"
)

// Previewer issues and revokes preview handles.
type Previewer interface {
	Acquire(file *model.MediaFile) (preview.Handle, error)
	Release(handle preview.Handle) error
}

// Session is safe for concurrent use. The remote call runs without the lock
// held; a second start while one is in flight is rejected with ErrBusy.
type Session struct {
	mu sync.Mutex

	file      *model.MediaFile
	handle    preview.Handle
	lifecycle model.Lifecycle
	// generation changes on every select/remove so a completion for a file
	// that is no longer selected can be recognised and dropped
	generation uint64
	closed     bool

	transcriber api.Transcriber
	previews    Previewer
	logger      *zap.Logger
	onReject    func()
}

// New creates an idle session with no file.
func New(transcriber api.Transcriber, previews Previewer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		lifecycle:   model.Idle(),
		transcriber: transcriber,
		previews:    previews,
		logger:      logger,
	}
}

// SelectFile validates the declared type, replaces any current file and
// resets the lifecycle to Idle. A rejected file leaves the session untouched
// and acquires no preview.
func (s *Session) SelectFile(name, mimeType string, data []byte) (model.Snapshot, error) {
	file, err := media.NewMediaFile(name, mimeType, data)
	if err != nil {
		s.logger.Info("file rejected", zap.String("file", name), zap.String("mime_type", mimeType))
		if s.onReject != nil {
			s.onReject()
		}
		return s.Snapshot(), err
	}
	return s.Select(file)
}

// Select installs an already validated file.
func (s *Session) Select(file *model.MediaFile) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.snapshotLocked(), errors.ErrClosed
	}
	if file == nil {
		return s.snapshotLocked(), errors.ErrNoFile
	}

	// release first: a session never holds two live handles
	s.releaseLocked()
	s.file = nil
	s.generation++
	s.lifecycle = model.Idle()

	handle, err := s.previews.Acquire(file)
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.file = file
	s.handle = handle

	s.logger.Info("file selected",
		zap.String("file", file.Name()),
		zap.String("kind", string(file.Kind())),
		zap.Int64("size", file.Size()),
	)
	return s.snapshotLocked(), nil
}

// RemoveFile drops the current file, releases its preview and resets the
// lifecycle to Idle. Removing when nothing is selected is a no-op.
func (s *Session) RemoveFile() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseLocked()
	s.file = nil
	s.generation++
	s.lifecycle = model.Idle()
	return s.snapshotLocked()
}

// StartTranscription submits the current file and blocks until the remote
// side answers. With no file selected it does nothing and returns the
// current snapshot. While Loading it returns ErrBusy.
//
// A failed call moves the lifecycle to Failed and is reported only through
// the snapshot; the returned error is reserved for calls that were not
// started.
func (s *Session) StartTranscription(ctx context.Context) (model.Snapshot, error) {
	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return s.snapshotLocked(), errors.ErrClosed
	}
	if s.file == nil {
		defer s.mu.Unlock()
		return s.snapshotLocked(), nil
	}
	if s.lifecycle.IsLoading() {
		defer s.mu.Unlock()
		return s.snapshotLocked(), errors.ErrBusy
	}

	file := s.file
	generation := s.generation
	s.lifecycle = model.Loading()
	s.mu.Unlock()

	s.logger.Info("transcription started",
		zap.String("file", file.Name()),
		zap.String("provider", s.transcriber.Name()),
	)
	text, err := s.transcriber.Transcribe(ctx, file)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation {
		s.logger.Info("discarding result for replaced file", zap.String("file", file.Name()))
		return s.snapshotLocked(), nil
	}

	if err != nil {
		if errors.KindOf(err) == "" {
			err = errors.Remote(err)
		}
		kind := errors.KindOf(err)
		s.lifecycle = model.Failed(string(kind), errors.UserMessage(err))
		s.logger.Warn("transcription failed",
			zap.String("file", file.Name()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return s.snapshotLocked(), nil
	}

	if text == "" {
		s.lifecycle = model.Failed(string(errors.KindEmptyResponse), errors.MessageEmptyResponse)
		return s.snapshotLocked(), nil
	}

	s.lifecycle = model.Succeeded(text)
	s.logger.Info("transcription succeeded",
		zap.String("file", file.Name()),
		zap.Int("chars", len(text)),
	)
	return s.snapshotLocked(), nil
}

// Transcript returns the text of a succeeded transcription.
func (s *Session) Transcript() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lifecycle.Phase != model.PhaseSucceeded {
		return "", false
	}
	return s.lifecycle.Text, true
}

// Snapshot returns the current state.
func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close releases the preview handle. It is idempotent; later operations
// return ErrClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.releaseLocked()
	s.file = nil
	s.generation++
	s.lifecycle = model.Idle()
	s.closed = true
}

func (s *Session) busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifecycle.IsLoading()
}

func (s *Session) releaseLocked() {
	if s.handle == "" {
		return
	}
	if err := s.previews.Release(s.handle); err != nil {
		s.logger.Warn("preview release failed", zap.String("handle", string(s.handle)), zap.Error(err))
	}
	s.handle = ""
}

func (s *Session) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		PreviewHandle: string(s.handle),
		Lifecycle:     s.lifecycle,
	}
	if s.file != nil {
		info := s.file.Info()
		snap.File = &info
	}
	return snap
}
