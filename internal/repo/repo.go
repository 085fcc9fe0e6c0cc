package repo

import (
	"context"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo/restapi"
	"freelance-marketplace-client/pkg/restclient"
)

type Publication interface {
	GetPublications(ctx context.Context, filter entity.PublicationFilter) ([]entity.Publication, error)
	CreatePublication(ctx context.Context, input *entity.CreatePublicationInput) (*entity.Publication, error)
	AddProposition(ctx context.Context, publicationId string, input *entity.CreatePropositionInput) (*entity.Publication, error)
}

type Category interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
}

type Auth interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	Register(ctx context.Context, input *entity.RegisterInput) error
}

type User interface {
	GetUsers(ctx context.Context) ([]entity.User, error)
}

type Repositories struct {
	Publication
	Category
	Auth
	User
}

func NewRepositories(c *restclient.Client) *Repositories {
	return &Repositories{
		Publication: restapi.NewPublicationRepo(c),
		Category:    restapi.NewCategoryRepo(c),
		Auth:        restapi.NewAuthRepo(c),
		User:        restapi.NewUserRepo(c),
	}
}
