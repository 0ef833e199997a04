package product

import (
	"context"

	"tillmate/internal/domain"
)

// UpdateInput carries partial catalog edits; nil fields are left unchanged.
type UpdateInput struct {
	Name       *string
	PriceCents *int64
	Category   *string
	SKU        *string
	Stock      *int
	Image      *string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
