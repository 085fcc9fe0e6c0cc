// Package session holds the process-wide authenticated identity. The store is
// injected into every component that needs it; change notifications carry no
// payload, observers re-read the store when notified.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"freelance-marketplace-client/internal/entity"
)

// Persisted keys, one per identity fragment, matching what the browser client
// kept in local storage.
const (
	keyToken     = "token"
	keyUserId    = "userId"
	keyUserEmail = "userEmail"
	keyUserRole  = "userRole"
	keyUser      = "user"
)

type Store interface {
	// Current returns the active session, if any.
	Current() (*entity.Session, bool)
	// Set replaces the active session and notifies subscribers.
	Set(sess *entity.Session) error
	// Clear removes every identity fragment and notifies subscribers.
	Clear() error
	// Subscribe registers fn to run after every change. The returned func
	// removes the subscription.
	Subscribe(fn func()) (unsubscribe func())
}

func sessionValues(sess *entity.Session) (map[string]string, error) {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	return map[string]string{
		keyToken:     sess.Token,
		keyUserId:    sess.User.Id,
		keyUserEmail: sess.User.Email,
		keyUserRole:  sess.User.Role,
		keyUser:      string(raw),
	}, nil
}

func sessionFromValues(values map[string]string) (*entity.Session, bool) {
	token := values[keyToken]
	if token == "" {
		return nil, false
	}

	var user entity.User
	if raw := values[keyUser]; raw != "" {
		// a torn user record still leaves the flat keys usable
		_ = json.Unmarshal([]byte(raw), &user)
	}
	if user.Id == "" {
		user.Id = values[keyUserId]
	}
	if user.Email == "" {
		user.Email = values[keyUserEmail]
	}
	if user.Role == "" {
		user.Role = values[keyUserRole]
	}

	return &entity.Session{Token: token, User: user}, true
}

// FileStore persists the session as a flat JSON object on disk so it survives
// process restarts.
type FileStore struct {
	path string

	mu   sync.Mutex
	subs map[int]func()
	next int
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, subs: make(map[int]func())}
}

func (s *FileStore) Current() (*entity.Session, bool) {
	s.mu.Lock()
	values := s.read()
	s.mu.Unlock()

	return sessionFromValues(values)
}

func (s *FileStore) Set(sess *entity.Session) error {
	values, err := sessionValues(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	err = s.write(values)
	subs := s.subscribers()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	notify(subs)

	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	err := os.Remove(s.path)
	subs := s.subscribers()
	s.mu.Unlock()

	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	notify(subs)

	return nil
}

func (s *FileStore) Subscribe(fn func()) func() {
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

func (s *FileStore) read() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	return values
}

func (s *FileStore) write(values map[string]string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

func (s *FileStore) subscribers() []func() {
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
