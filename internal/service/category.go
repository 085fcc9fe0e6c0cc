package service

import (
	"context"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo"
)

type CategoryService struct {
	categoryRepo repo.Category
}

func NewCategoryService(repos *repo.Repositories) *CategoryService {
	return &CategoryService{categoryRepo: repos.Category}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.GetCategories(ctx)
}
