package session

import (
	"sync"

	"freelance-marketplace-client/internal/entity"
)

// MemoryStore keeps the session in process memory only. Used by tests and by
// commands that must not touch the on-disk session.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	subs   map[int]func()
	next   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subs: make(map[int]func())}
}

func (s *MemoryStore) Current() (*entity.Session, bool) {
	s.mu.Lock()
	values := s.values
	s.mu.Unlock()

	return sessionFromValues(values)
}

func (s *MemoryStore) Set(sess *entity.Session) error {
	values, err := sessionValues(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = values
	subs := s.subscribers()
	s.mu.Unlock()

	notify(subs)

	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.values = nil
	subs := s.subscribers()
	s.mu.Unlock()

	notify(subs)

	return nil
}

func (s *MemoryStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Values exposes the raw persisted fragments; test helper.
func (s *MemoryStore) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[string]string, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}

	return copied
}

func (s *MemoryStore) subscribers() []func() {
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	return subs
}
