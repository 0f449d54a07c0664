package session

import (
	"context"
	"sync"
	"time"

	"cn7-transcriptor/internal/app/api"
	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for an unknown session id.
var ErrNotFound = errors.New("session not found")

type entry struct {
	session    *Session
	lastAccess time.Time
}

// Store keeps the open sessions of the HTTP layer in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	// stopExpiry and expiryDone are set while the expiry loop runs
	stopExpiry context.CancelFunc
	expiryDone chan struct{}

	transcriber api.Transcriber
	previews    Previewer
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewStore creates an empty store whose sessions share transcriber and previews.
func NewStore(transcriber api.Transcriber, previews Previewer, m *metrics.Metrics, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		sessions:    make(map[string]*entry),
		transcriber: transcriber,
		previews:    previews,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// Create opens a new session and returns its id.
func (st *Store) Create() (string, *Session) {
	id := uuid.NewString()
	s := New(st.transcriber, st.previews, st.logger.With(zap.String("session_id", id)))
	s.onReject = st.metrics.FileRejected

	st.mu.Lock()
	st.sessions[id] = &entry{session: s, lastAccess: st.now()}
	st.mu.Unlock()

	st.metrics.SessionOpened()
	return id, s
}

// Get returns the session with id and marks it as used.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastAccess = st.now()
	return e.session, nil
}

// Delete closes and forgets the session.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	e, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	e.session.Close()
	st.metrics.SessionClosed()
	return nil
}

// Len returns the number of open sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartExpiry closes sessions left unused for longer than ttl until ctx is
// done or CloseAll runs. A ttl <= 0 disables expiry. Calling it again while
// the loop runs has no effect.
func (st *Store) StartExpiry(ctx context.Context, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.stopExpiry != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	st.stopExpiry = cancel
	st.expiryDone = make(chan struct{})

	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	if interval > time.Minute {
		interval = time.Minute
	}
	go st.expireLoop(ctx, ttl, interval, st.expiryDone)
}

func (st *Store) expireLoop(ctx context.Context, ttl, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.ExpireIdle(ttl)
		}
	}
}

// ExpireIdle closes every session unused for longer than ttl and returns how
// many were closed. A session waiting on the remote call is kept.
func (st *Store) ExpireIdle(ttl time.Duration) int {
	cutoff := st.now().Add(-ttl)

	st.mu.Lock()
	var expired []*Session
	for id, e := range st.sessions {
		if e.lastAccess.After(cutoff) || e.session.busy() {
			continue
		}
		delete(st.sessions, id)
		expired = append(expired, e.session)
		st.logger.Info("session expired", zap.String("session_id", id), zap.Duration("ttl", ttl))
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Close()
		st.metrics.SessionClosed()
	}
	return len(expired)
}

// CloseAll stops expiry and closes every session, used on shutdown.
func (st *Store) CloseAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*entry)
	stop, done := st.stopExpiry, st.expiryDone
	st.stopExpiry, st.expiryDone = nil, nil
	st.mu.Unlock()

	if stop != nil {
		stop()
		<-done
	}

	for _, e := range sessions {
		e.session.Close()
		st.metrics.SessionClosed()
	}
}
