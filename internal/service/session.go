package service

import (
	"context"
	"fmt"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo"
	"freelance-marketplace-client/internal/session"
)

type SessionService struct {
	authRepo repo.Auth
	store    session.Store
}

func NewSessionService(repos *repo.Repositories, store session.Store) *SessionService {
	return &SessionService{
		authRepo: repos.Auth,
		store:    store,
	}
}

// Login authenticates against the backend, persists the identity and returns
// the session together with the role-dependent landing route.
func (s *SessionService) Login(ctx context.Context, email, password string) (*entity.Session, string, error) {
	sess, err := s.authRepo.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	if err := s.store.Set(sess); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	return sess, common.LandingRoute(sess.User.Role), nil
}

func (s *SessionService) Register(ctx context.Context, input *entity.RegisterInput) error {
	return s.authRepo.Register(ctx, input)
}

func (s *SessionService) Logout() error {
	return s.store.Clear()
}

func (s *SessionService) Current() (*entity.Session, bool) {
	return s.store.Current()
}

func (s *SessionService) Subscribe(fn func()) func() {
	return s.store.Subscribe(fn)
}
