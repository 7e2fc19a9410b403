package study_session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/google/uuid"
)

// session is one running study session. mu serializes every operation on
// the scheduler; lastActivity is read without it by the registry.
type session struct {
	mu sync.Mutex

	id          uuid.UUID
	categoryIDs []uuid.UUID
	scheduler   *study.Scheduler
	rng         study.Random
	presented   *study.Card
	turns       int
	struggled   int
	easy        int
	startedAt   time.Time

	lastActivity atomic.Int64 // unix nanoseconds
}

func (s *session) touch(now time.Time) {
	s.lastActivity.Store(now.UnixNano())
}

func (s *session) idleSince() time.Time {
	return time.Unix(0, s.lastActivity.Load()).UTC()
}

// summary must be called with s.mu held.
func (s *session) summary() Summary {
	ids := make([]uuid.UUID, len(s.categoryIDs))
	copy(ids, s.categoryIDs)
	return Summary{
		ID:           s.id,
		State:        s.scheduler.State(),
		CategoryIDs:  ids,
		QueueSize:    s.scheduler.Size(),
		Turns:        s.turns,
		Struggled:    s.struggled,
		Easy:         s.easy,
		StartedAt:    s.startedAt,
		LastActivity: s.idleSince(),
	}
}

// registry holds live sessions. Lock order is registry before session.
type registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	capacity int
	ttl      time.Duration
}

func newRegistry(capacity int, ttl time.Duration) *registry {
	return &registry{
		sessions: make(map[uuid.UUID]*session),
		capacity: capacity,
		ttl:      ttl,
	}
}

func (r *registry) expired(s *session, now time.Time) bool {
	return now.Sub(s.idleSince()) > r.ttl
}

// add registers s, evicting expired sessions first when at capacity.
func (r *registry) add(s *session, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sessions) >= r.capacity {
		r.sweepLocked(now)
	}
	if len(r.sessions) >= r.capacity {
		return ErrTooManySessions
	}
	r.sessions[s.id] = s
	return nil
}

// get returns a live session, dropping it if it has expired.
func (r *registry) get(id uuid.UUID, now time.Time) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.expired(s, now) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *registry) remove(id uuid.UUID) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	delete(r.sessions, id)
	return s, nil
}

// sweep drops expired sessions and returns how many were removed.
func (r *registry) sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(now)
}

func (r *registry) sweepLocked(now time.Time) int {
	removed := 0
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
