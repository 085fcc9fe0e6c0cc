package service

import (
	"context"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo"
	"freelance-marketplace-client/internal/session"
)

type Publication interface {
	GetPublications(ctx context.Context, filter entity.PublicationFilter) ([]entity.Publication, error)
	CreatePublication(ctx context.Context, input *entity.CreatePublicationInput) (*entity.Publication, error)
	GetSiteStats(ctx context.Context) (*entity.SiteStats, error)
}

type Proposition interface {
	SubmitProposition(ctx context.Context, publication *entity.Publication, input *entity.CreatePropositionInput) (*entity.Publication, error)
}

type Session interface {
	Login(ctx context.Context, email, password string) (*entity.Session, string, error)
	Register(ctx context.Context, input *entity.RegisterInput) error
	Logout() error
	Current() (*entity.Session, bool)
	Subscribe(fn func()) (unsubscribe func())
}

type Category interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
}

type Services struct {
	Publication Publication
	Proposition Proposition
	Session     Session
	Category    Category
}

func NewServices(repos *repo.Repositories, store session.Store) *Services {
	return &Services{
		Publication: NewPublicationService(repos),
		Proposition: NewPropositionService(repos, store),
		Session:     NewSessionService(repos, store),
		Category:    NewCategoryService(repos),
	}
}
