// internal/server/sessions.go
package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"zuliam-concierge/internal/common/errors"
	"zuliam-concierge/internal/common/logger"
	"zuliam-concierge/internal/common/metrics"
	"zuliam-concierge/internal/concierge"
)

// sessionStore owns every live chat session. All mutation of a session
// happens under the store lock, so the conversation engine never sees
// concurrent writers for the same session.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*concierge.Session
	max      int
	ttl      time.Duration
	logger   logger.Logger
}

func newSessionStore(max int, ttl time.Duration, log logger.Logger) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*concierge.Session),
		max:      max,
		ttl:      ttl,
		logger:   log.WithFields(map[string]interface{}{"component": "session-store"}),
	}
}

// create mints a new session seeded by the engine.
func (st *sessionStore) create(engine *concierge.Engine, now time.Time) (concierge.Snapshot, *errors.StandardError) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.max > 0 && len(st.sessions) >= st.max {
		return concierge.Snapshot{}, errors.NewSessionLimitError(st.max)
	}

	session := engine.NewSession(uuid.NewString(), now)
	st.sessions[session.ID] = session
	metrics.ActiveSessions.Set(float64(len(st.sessions)))

	st.logger.Info("session created", map[string]interface{}{
		"sessionId": session.ID,
		"active":    len(st.sessions),
	})
	return engine.Snapshot(session), nil
}

// with runs fn on the named session under the store lock, bumping its
// activity timestamp.
func (st *sessionStore) with(id string, now time.Time, fn func(*concierge.Session)) *errors.StandardError {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return errors.NewSessionNotFoundError(id)
	}
	session.Touch(now)
	fn(session)
	return nil
}

// sweep drops sessions idle past the TTL and returns how many were
// removed.
func (st *sessionStore) sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, session := range st.sessions {
		if session.Expired(now, st.ttl) {
			delete(st.sessions, id)
			removed++
		}
	}
	metrics.ActiveSessions.Set(float64(len(st.sessions)))
	return removed
}

func (st *sessionStore) count() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// janitor sweeps expired sessions until the context is cancelled.
func (st *sessionStore) janitor(ctx context.Context, interval time.Duration, clock func() time.Time) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := st.sweep(clock()); removed > 0 {
				st.logger.Debug("expired sessions swept", map[string]interface{}{
					"removed": removed,
					"active":  st.count(),
				})
			}
		}
	}
}
