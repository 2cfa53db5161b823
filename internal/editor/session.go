package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps one workflow per browser session, in memory only. Idle
// sessions are evicted after the TTL by a janitor goroutine.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	factory  func() *Workflow
	stop     chan struct{}
	stopOnce sync.Once
}

type session struct {
	workflow *Workflow
	lastSeen time.Time
}

// NewSessionStore builds a store whose sessions run workflows produced by
// factory and expire after ttl of inactivity.
func NewSessionStore(ttl time.Duration, factory func() *Workflow) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		factory:  factory,
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Acquire returns the workflow for id, creating a fresh session when the id
// is unknown or expired. The returned id must be handed back to the client.
func (s *SessionStore) Acquire(id string) (string, *Workflow) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok && now.Sub(sess.lastSeen) <= s.ttl {
		sess.lastSeen = now
		return id, sess.workflow
	}
	id = uuid.NewString()
	sess := &session{workflow: s.factory(), lastSeen: now}
	s.sessions[id] = sess
	return id, sess.workflow
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the janitor. Live sessions simply vanish with the process.
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *SessionStore) janitor() {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.stop:
			return
		}
	}
}

func (s *SessionStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
