// Package session keeps the per-visitor view dedupe state in memory.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/metrics"
)

type session struct {
	counted  map[domain.EntryRef]struct{}
	lastSeen time.Time
}

// Tracker implements port.SessionTracker. Sessions idle for longer than
// the TTL are dropped lazily; a zero TTL keeps them until End.
type Tracker struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Begin opens a session and evicts expired ones.
func (t *Tracker) Begin() string {
	id := uuid.NewString()

	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	for sid, s := range t.sessions {
		if t.expired(s, now) {
			delete(t.sessions, sid)
		}
	}
	t.sessions[id] = &session{counted: make(map[domain.EntryRef]struct{}), lastSeen: now}
	metrics.ActiveSessions.Set(float64(len(t.sessions)))
	return id
}

// MarkCounted reports true exactly once per session and unit.
func (t *Tracker) MarkCounted(id string, unit domain.EntryRef) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[id]
	now := t.now()
	if ok && t.expired(s, now) {
		delete(t.sessions, id)
		metrics.ActiveSessions.Set(float64(len(t.sessions)))
		ok = false
	}
	if !ok {
		return false, domain.ErrUnknownSession
	}
	s.lastSeen = now
	if _, seen := s.counted[unit]; seen {
		return false, nil
	}
	s.counted[unit] = struct{}{}
	return true, nil
}

func (t *Tracker) End(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, id)
	metrics.ActiveSessions.Set(float64(len(t.sessions)))
}

// Len returns the number of live sessions.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

func (t *Tracker) expired(s *session, now time.Time) bool {
	return t.ttl > 0 && now.Sub(s.lastSeen) > t.ttl
}
