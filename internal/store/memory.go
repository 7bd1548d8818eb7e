package store

import (
	"context"
	"sync"
	"time"

	"github.com/Aryan1092raj/HoneyPot/internal/session"
)

// Memory keeps sessions in a process-lifetime map. Get, Put and List
// exchange deep copies, so the stored object is never shared outside the
// store's own lock; unlocked readers like the session endpoints can inspect
// a result while a pipeline run mutates its own copy. A janitor goroutine
// evicts sessions idle longer than the configured TTL; zero TTL disables
// eviction entirely.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	idleTTL  time.Duration
	done     chan struct{}
	once     sync.Once
}

func NewMemory(idleTTL time.Duration) *Memory {
	m := &Memory{
		sessions: make(map[string]*session.Session),
		idleTTL:  idleTTL,
		done:     make(chan struct{}),
	}
	if idleTTL > 0 {
		go m.janitor()
	}
	return m
}

func (m *Memory) Get(_ context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *Memory) Put(_ context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *Memory) List(_ context.Context) ([]*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*session.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (m *Memory) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *Memory) janitor() {
	interval := m.idleTTL / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictIdle(time.Now().UTC())
		}
	}
}

func (m *Memory) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if now.Sub(s.LastActivityAt) > m.idleTTL {
			delete(m.sessions, id)
		}
	}
}
