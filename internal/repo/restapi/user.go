package restapi

import (
	"context"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/pkg/restclient"
)

type UserRepo struct {
	client *restclient.Client
}

func NewUserRepo(c *restclient.Client) *UserRepo {
	return &UserRepo{client: c}
}

func (r *UserRepo) GetUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.client.GetJSON(ctx, "/utilisateurs", nil, &users); err != nil {
		return nil, mapStatus(err)
	}

	return users, nil
}
