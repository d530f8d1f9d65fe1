package client

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Client is the store API contract. Every call that needs authentication
// takes the caller's current token; an empty token sends no Authorization
// header.
type Client interface {
	Close() error

	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Me(ctx context.Context, token string) (*models.User, error)

	ListProducts(ctx context.Context, token string) ([]models.Product, error)
	GetProduct(ctx context.Context, token, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, token string, in models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	ListCategories(ctx context.Context, token string) ([]models.Category, error)
	GetCategory(ctx context.Context, token, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, token string, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, token, id string, in models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error

	GetUser(ctx context.Context, token, id string) (*models.User, error)
	UpdateUser(ctx context.Context, token, id string, in models.ProfileInput) (*models.User, error)
}
