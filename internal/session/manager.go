package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"study-planner/internal/deadline/repository"
	"study-planner/internal/deadline/repository/memory"
)

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 2 * time.Hour
)

// Manager owns every live Session. Sessions idle for longer than the TTL, or
// pushed out when MaxSessions is reached, are discarded with their deadlines.
type Manager struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	newStore func() repository.Repository
	now      func() time.Time
}

// NewManager creates a Manager backed by in-memory deadline stores.
func NewManager(cfg Config) *Manager {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Manager{
		sessions: expirable.NewLRU[string, *Session](cfg.MaxSessions, nil, cfg.TTL),
		newStore: func() repository.Repository { return memory.New() },
		now:      time.Now,
	}
}

// Create starts a new empty session.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createLocked()
}

func (m *Manager) createLocked() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: m.now(),
		Deadlines: m.newStore(),
	}
	m.sessions.Add(s.ID, s)
	return s
}

// Get returns the session with the given id and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, false
	}
	m.sessions.Add(id, s)
	return s, true
}

// GetOrCreate returns the session for id, or a new session when id is empty
// or unknown. created reports whether a new session was started.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if existing, ok := m.sessions.Get(id); ok {
			m.sessions.Add(id, existing)
			return existing, false
		}
	}
	return m.createLocked(), true
}

// Acquire gives the caller exclusive use of the session until release is
// called. A session that is already held (a generation is in flight) is
// reported as ErrSessionBusy rather than waited on.
func (m *Manager) Acquire(id string) (*Session, func(), error) {
	s, ok := m.Get(id)
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	if !s.mu.TryLock() {
		return nil, nil, ErrSessionBusy
	}
	return s, s.mu.Unlock, nil
}

// Reset discards the session and everything it holds.
func (m *Manager) Reset(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
