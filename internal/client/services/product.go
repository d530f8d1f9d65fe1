package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/forms"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// TokenSource yields the bearer token for the next request.
type TokenSource interface {
	Token() string
}

type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, in models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	client client.Client
	tokens TokenSource
}

func NewProductService(c client.Client, tokens TokenSource) ProductService {
	return &productService{client: c, tokens: tokens}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	ps, err := s.client.ListProducts(ctx, s.tokens.Token())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return ps, nil
}

func (s *productService) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.client.GetProduct(ctx, s.tokens.Token(), id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

func (s *productService) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	if err := forms.CheckProduct(in); err != nil {
		return nil, err
	}
	p, err := s.client.CreateProduct(ctx, s.tokens.Token(), in)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	if err := forms.CheckProduct(in); err != nil {
		return nil, err
	}
	p, err := s.client.UpdateProduct(ctx, s.tokens.Token(), id, in)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, s.tokens.Token(), id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
