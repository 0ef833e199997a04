package catalog

import (
	"context"
	"errors"
	"strings"

	"tillmate/internal/domain"
	productrepo "tillmate/internal/repository/product"

	"github.com/google/uuid"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Category   string `json:"category"`
	SKU        string `json:"sku"`
	Stock      *int   `json:"stock,omitempty"`
	Image      string `json:"image"`
}

type UpdateInput struct {
	Name       *string `json:"name,omitempty"`
	PriceCents *int64  `json:"priceCents,omitempty"`
	Category   *string `json:"category,omitempty"`
	SKU        *string `json:"sku,omitempty"`
	Stock      *int    `json:"stock,omitempty"`
	Image      *string `json:"image,omitempty"`
}

func (s *Service) List(ctx context.Context, category, query string) ([]domain.Product, error) {
	switch {
	case category != "":
		return s.repo.ListByCategory(ctx, category)
	case query != "":
		return s.repo.Search(ctx, query)
	default:
		return s.repo.List(ctx)
	}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("priceCents must be >= 0")
	}
	return s.repo.Create(ctx, domain.Product{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		PriceCents: in.PriceCents,
		Category:   strings.TrimSpace(in.Category),
		SKU:        strings.TrimSpace(in.SKU),
		Stock:      in.Stock,
		Image:      in.Image,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return nil, errors.New("priceCents must be >= 0")
	}
	return s.repo.Update(ctx, id, productrepo.UpdateInput{
		Name:       in.Name,
		PriceCents: in.PriceCents,
		Category:   in.Category,
		SKU:        in.SKU,
		Stock:      in.Stock,
		Image:      in.Image,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
