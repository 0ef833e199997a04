package product

import (
	"context"
	"errors"
	"io"
	"log"

	"tillmate/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, name, price_cents, category, sku, stock, image, created_at, updated_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.scanMany(ctx, `
SELECT `+productColumns+`
FROM products
ORDER BY created_at DESC
`)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.scanOne(ctx, `
SELECT `+productColumns+`
FROM products
WHERE id = $1
`, id)
}

func (r *postgresRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.scanOne(ctx, `
SELECT `+productColumns+`
FROM products
WHERE sku = $1
ORDER BY created_at ASC
LIMIT 1
`, sku)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.scanMany(ctx, `
SELECT `+productColumns+`
FROM products
WHERE category = $1
ORDER BY name ASC
`, category)
}

func (r *postgresRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return r.scanMany(ctx, `
SELECT `+productColumns+`
FROM products
WHERE name ILIKE '%' || $1 || '%'
   OR category ILIKE '%' || $1 || '%'
   OR sku ILIKE '%' || $1 || '%'
ORDER BY name ASC
`, query)
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, price_cents, category, sku, stock, image)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + productColumns + `
`
	created, err := r.queryOne(ctx, q, p.ID, p.Name, p.PriceCents, p.Category, p.SKU, p.Stock, p.Image)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", created.ID, created.Name)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET name        = COALESCE($2, name),
    price_cents = COALESCE($3, price_cents),
    category    = COALESCE($4, category),
    sku         = COALESCE($5, sku),
    stock       = COALESCE($6, stock),
    image       = COALESCE($7, image),
    updated_at  = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	updated, err := r.queryOne(ctx, q, id, in.Name, in.PriceCents, in.Category, in.SKU, in.Stock, in.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOne(ctx context.Context, q string, args ...interface{}) (*domain.Product, error) {
	p, err := r.queryOne(ctx, q, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) queryOne(ctx context.Context, q string, args ...interface{}) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&p.ID, &p.Name, &p.PriceCents, &p.Category, &p.SKU, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) scanMany(ctx context.Context, q string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Category, &p.SKU, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
