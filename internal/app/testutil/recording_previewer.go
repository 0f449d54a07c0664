package testutil

import (
	"sync"
	"testing"

	"cn7-transcriptor/internal/app/model"
	"cn7-transcriptor/internal/app/preview"
	"github.com/stretchr/testify/assert"
)

// RecordingPreviewer wraps a real preview.Manager and counts calls.
type RecordingPreviewer struct {
	*preview.Manager

	mu       sync.Mutex
	acquired []preview.Handle
	released []preview.Handle
	failed   int
}

// NewRecordingPreviewer creates a recorder around a fresh manager.
func NewRecordingPreviewer() *RecordingPreviewer {
	return &RecordingPreviewer{Manager: preview.NewManager(nil, nil)}
}

// Acquire records and forwards.
func (r *RecordingPreviewer) Acquire(file *model.MediaFile) (preview.Handle, error) {
	handle, err := r.Manager.Acquire(file)
	if err == nil {
		r.mu.Lock()
		r.acquired = append(r.acquired, handle)
		r.mu.Unlock()
	}
	return handle, err
}

// Release records and forwards. Releases of unknown handles are counted as
// failures so double releases show up.
func (r *RecordingPreviewer) Release(handle preview.Handle) error {
	err := r.Manager.Release(handle)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.failed++
		return err
	}
	r.released = append(r.released, handle)
	return nil
}

// Acquired returns the number of successful acquires.
func (r *RecordingPreviewer) Acquired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.acquired)
}

// Released returns the number of successful releases.
func (r *RecordingPreviewer) Released() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.released)
}

// AssertBalanced checks that every acquired handle was released exactly once.
func (r *RecordingPreviewer) AssertBalanced(t *testing.T) {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()

	assert.ElementsMatch(t, r.acquired, r.released, "every acquired handle must be released")
	assert.Zero(t, r.failed, "no release of an unknown or released handle")
	assert.Zero(t, r.Manager.Live(), "no live preview handles")
}
