package restapi

import (
	"context"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/pkg/restclient"
)

type CategoryRepo struct {
	client *restclient.Client
}

func NewCategoryRepo(c *restclient.Client) *CategoryRepo {
	return &CategoryRepo{client: c}
}

func (r *CategoryRepo) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.client.GetJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, mapStatus(err)
	}

	return categories, nil
}
