package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name       string
	PriceCents int64
	Category   string
	SKU        string
}

// Apply inserts the sample catalog for manual testing. Products are matched
// by name, so re-running the seed is idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Name: "Espresso", PriceCents: 350, Category: "Beverages", SKU: "BEV-ESP"},
		{Name: "Cappuccino", PriceCents: 450, Category: "Beverages", SKU: "BEV-CAP"},
		{Name: "Latte", PriceCents: 475, Category: "Beverages", SKU: "BEV-LAT"},
		{Name: "Croissant", PriceCents: 300, Category: "Bakery", SKU: "BAK-CRO"},
		{Name: "Muffin", PriceCents: 350, Category: "Bakery", SKU: "BAK-MUF"},
		{Name: "Bagel", PriceCents: 250, Category: "Bakery", SKU: "BAK-BAG"},
		{Name: "Caesar Salad", PriceCents: 850, Category: "Food", SKU: "FOO-SAL"},
		{Name: "Club Sandwich", PriceCents: 900, Category: "Food", SKU: "FOO-SAN"},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, price_cents, category, sku)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.PriceCents, p.Category, p.SKU)
	return err
}
