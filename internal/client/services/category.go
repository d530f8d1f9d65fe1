package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/forms"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id string, in models.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	client client.Client
	tokens TokenSource
}

func NewCategoryService(c client.Client, tokens TokenSource) CategoryService {
	return &categoryService{client: c, tokens: tokens}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	cs, err := s.client.ListCategories(ctx, s.tokens.Token())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cs, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	c, err := s.client.GetCategory(ctx, s.tokens.Token(), id)
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return c, nil
}

func (s *categoryService) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	if err := forms.CheckCategory(in); err != nil {
		return nil, err
	}
	c, err := s.client.CreateCategory(ctx, s.tokens.Token(), in)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, in models.CategoryInput) (*models.Category, error) {
	if err := forms.CheckCategory(in); err != nil {
		return nil, err
	}
	c, err := s.client.UpdateCategory(ctx, s.tokens.Token(), id, in)
	if err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteCategory(ctx, s.tokens.Token(), id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
