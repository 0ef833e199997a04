package sale

import (
	"context"
	"time"

	"tillmate/internal/domain"
)

// Repository is the legacy sales collection from store version 1. It is
// superseded by the receipt ledger but stays readable and versioned with the
// rest of the store.
type Repository interface {
	ListAll(ctx context.Context) ([]domain.Sale, error)
	Get(ctx context.Context, id string) (*domain.Sale, error)
	Add(ctx context.Context, description string, totalCents int64) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
	ListByRange(ctx context.Context, start, end time.Time) ([]domain.Sale, error)
	ListToday(ctx context.Context) ([]domain.Sale, error)
}
