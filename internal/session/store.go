// Package session holds the per-browser export buffer between requests.
//
// A session is the only state that outlives a single request: the serialized
// duplicate rows from the last successful upload, kept so a later download
// request can stream them back. Sessions are in-memory only and expire after
// a period of inactivity; nothing is ever persisted.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the state bound to one browser session.
type Session struct {
	ID string

	// ExportCSV is the serialized duplicate subset from the last upload,
	// empty when the last upload found no duplicates.
	ExportCSV string

	// HasDuplicates records whether the last upload produced duplicates.
	HasDuplicates bool
}

// entry wraps a session with its expiry deadline.
type entry struct {
	sess      *Session
	expiresAt time.Time
}

// Store is an in-memory session store with TTL-based expiry.
// All methods are safe for concurrent use; each session is only ever
// touched by one request at a time, but different sessions may be
// served concurrently.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration

	done chan struct{}
}

// NewStore creates a session store and starts its background sweeper.
// Call Close to stop the sweeper on shutdown.
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.cleanup(cleanupInterval)
	return s
}

// Close stops the background sweeper.
func (s *Store) Close() {
	close(s.done)
}

// cleanup sweeps expired sessions on a fixed interval until Close.
func (s *Store) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.done:
			return
		}
	}
}

// sweep removes every session that expired before now.
func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

// Ensure returns a live session ID. When id names a known, unexpired session
// its TTL is refreshed and it is returned unchanged; otherwise a fresh
// session is created.
func (s *Store) Ensure(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if e, ok := s.sessions[id]; ok && now.Before(e.expiresAt) {
		e.expiresAt = now.Add(s.ttl)
		return id
	}

	newID := uuid.NewString()
	s.sessions[newID] = &entry{
		sess:      &Session{ID: newID},
		expiresAt: now.Add(s.ttl),
	}
	return newID
}

// SetExport stores the serialized duplicate rows for a session, overwriting
// any previous buffer. The session is created if it does not exist.
func (s *Store) SetExport(id, csv string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.touch(id)
	e.sess.ExportCSV = csv
	e.sess.HasDuplicates = true
}

// ClearExport drops a session's export buffer. Called when an upload finds
// no duplicates, so stale duplicates from an earlier upload cannot leak.
func (s *Store) ClearExport(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.touch(id)
	e.sess.ExportCSV = ""
	e.sess.HasDuplicates = false
}

// Export reads (without consuming) a session's buffer. The second return is
// false when the session is unknown, expired, or holds no duplicates.
func (s *Store) Export(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	e.expiresAt = time.Now().Add(s.ttl)

	if !e.sess.HasDuplicates || e.sess.ExportCSV == "" {
		return "", false
	}
	return e.sess.ExportCSV, true
}

// Len returns the number of live sessions. Used by tests and logging.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// touch returns the entry for id with a refreshed TTL, creating it if
// missing. Caller must hold s.mu.
func (s *Store) touch(id string) *entry {
	now := time.Now()
	e, ok := s.sessions[id]
	if !ok || now.After(e.expiresAt) {
		e = &entry{sess: &Session{ID: id}}
		s.sessions[id] = e
	}
	e.expiresAt = now.Add(s.ttl)
	return e
}
