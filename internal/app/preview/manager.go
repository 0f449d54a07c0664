// Package preview hands out revocable local references to selected files so
// a media player can load them before the file is submitted.
package preview

import (
	"sync"

	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/metrics"
	"cn7-transcriptor/internal/app/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownHandle is returned for a handle that was never issued or has
// already been released.
var ErrUnknownHandle = errors.New("unknown preview handle")

// Handle identifies a live preview. It is safe to put in a URL.
type Handle string

// Manager tracks live previews. Each Acquire must be paired with exactly one
// Release; a second Release of the same handle is reported, not counted.
type Manager struct {
	mu      sync.RWMutex
	live    map[Handle]*model.MediaFile
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewManager creates an empty manager. m and logger may be nil.
func NewManager(m *metrics.Metrics, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		live:    make(map[Handle]*model.MediaFile),
		metrics: m,
		logger:  logger,
	}
}

// Acquire registers file and returns a fresh handle for it.
func (m *Manager) Acquire(file *model.MediaFile) (Handle, error) {
	if file == nil {
		return "", errors.ErrNoFile
	}

	handle := Handle(uuid.NewString())

	m.mu.Lock()
	m.live[handle] = file
	m.mu.Unlock()

	m.metrics.PreviewAcquired()
	m.logger.Debug("preview acquired",
		zap.String("handle", string(handle)),
		zap.String("file", file.Name()),
	)
	return handle, nil
}

// Release frees handle.
func (m *Manager) Release(handle Handle) error {
	m.mu.Lock()
	_, ok := m.live[handle]
	delete(m.live, handle)
	m.mu.Unlock()

	if !ok {
		return ErrUnknownHandle
	}

	m.metrics.PreviewReleased()
	m.logger.Debug("preview released", zap.String("handle", string(handle)))
	return nil
}

// Open returns the file behind a live handle.
func (m *Manager) Open(handle Handle) (*model.MediaFile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, ok := m.live[handle]
	if !ok {
		return nil, ErrUnknownHandle
	}
	return file, nil
}

// Live returns the number of handles not yet released.
func (m *Manager) Live() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.live)
}
