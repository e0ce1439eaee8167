package form

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen-go/internal/validator"
)

var ErrFormNotFound = errors.New("form not found")

type session struct {
	form     *Form
	lastSeen time.Time
}

// Store keeps forms in memory, keyed by ID. Forms not touched within the TTL
// are evicted.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*session
	validator validator.Validator
	ttl       time.Duration
	now       func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// NewStore returns a Store and starts its eviction loop. Call Close to stop it.
func NewStore(v validator.Validator, ttl time.Duration) *Store {
	s := &Store{
		sessions:  make(map[string]*session),
		validator: v,
		ttl:       ttl,
		now:       time.Now,
		done:      make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Create starts a new idle form and returns its ID.
func (s *Store) Create() (string, View) {
	id := uuid.NewString()
	f := New(s.validator)

	s.mu.Lock()
	s.sessions[id] = &session{form: f, lastSeen: s.now()}
	s.mu.Unlock()

	return id, f.View()
}

// Do runs fn on the form with the given ID while holding the store lock and
// returns the resulting view. The view is returned even when fn fails, so
// callers can show the unchanged form next to the error.
func (s *Store) Do(id string, fn func(*Form) error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return View{}, ErrFormNotFound
	}
	sess.lastSeen = s.now()

	var err error
	if fn != nil {
		err = fn(sess.form)
	}
	return sess.form.View(), err
}

// Delete drops a form.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrFormNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live forms.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the eviction loop.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Store) evictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var n int
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) cleanup() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if n := s.evictExpired(); n > 0 {
				slog.Debug("evicted idle forms", "count", n)
			}
		}
	}
}
