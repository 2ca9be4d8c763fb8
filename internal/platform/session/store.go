// Package session keeps small per-browsing-session key spaces in memory
package session

import (
	"sync"
	"time"

	"showcase/internal/platform/logger"
)

// DefaultTTL is how long an idle session survives
const DefaultTTL = 30 * time.Minute

// Cache is one session's key space
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, val []byte)
}

type bucket struct {
	vals     map[string][]byte
	lastSeen time.Time
}

// Store holds every live session. Sessions idle longer than the TTL are dropped,
// which is how a session "ends" for the server.
type Store struct {
	mu        sync.Mutex
	ttl       time.Duration
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

// NewStore creates a Store; ttl <= 0 uses DefaultTTL
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{ttl: ttl, buckets: map[string]*bucket{}, now: time.Now}
}

// Scope returns the key space of session id
func (s *Store) Scope(id string) Cache { return scoped{s: s, id: id} }

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now(), true)
	return len(s.buckets)
}

func (s *Store) get(id, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.touchLocked(id, false)
	if b == nil {
		return nil, false
	}
	v, ok := b.vals[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (s *Store) set(id, key string, val []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.touchLocked(id, true)
	b.vals[key] = append([]byte(nil), val...)
}

// touchLocked returns the live bucket for id, refreshing its idle timer
func (s *Store) touchLocked(id string, create bool) *bucket {
	now := s.now()
	s.sweepLocked(now, false)

	b := s.buckets[id]
	if b != nil && now.Sub(b.lastSeen) > s.ttl {
		delete(s.buckets, id)
		b = nil
	}
	if b == nil {
		if !create {
			return nil
		}
		b = &bucket{vals: map[string][]byte{}}
		s.buckets[id] = b
	}
	b.lastSeen = now
	return b
}

// sweepLocked drops idle sessions at most once per TTL unless forced
func (s *Store) sweepLocked(now time.Time, force bool) {
	if !force && now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now
	dropped := 0
	for id, b := range s.buckets {
		if now.Sub(b.lastSeen) > s.ttl {
			delete(s.buckets, id)
			dropped++
		}
	}
	if dropped > 0 {
		logger.Named("session").Debug().Int("dropped", dropped).Int("live", len(s.buckets)).Msg("expired sessions swept")
	}
}

type scoped struct {
	s  *Store
	id string
}

func (c scoped) Get(key string) ([]byte, bool) { return c.s.get(c.id, key) }
func (c scoped) Set(key string, val []byte)    { c.s.set(c.id, key, val) }

// Memory is a standalone Cache for one-shot runs such as the CLI render
type Memory struct {
	mu   sync.RWMutex
	vals map[string][]byte
}

// NewMemory returns an empty Memory cache
func NewMemory() *Memory { return &Memory{vals: map[string][]byte{}} }

// Get returns a copy of the value under key
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

// Set stores a copy of val under key
func (m *Memory) Set(key string, val []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = append([]byte(nil), val...)
}
