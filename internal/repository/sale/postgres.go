package sale

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"tillmate/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Sale, error) {
	return r.scanMany(ctx, `
SELECT id::text, description, total_cents, created_at
FROM sales
ORDER BY created_at DESC
`)
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*domain.Sale, error) {
	var s domain.Sale
	err := r.pool.QueryRow(ctx, `
SELECT id::text, description, total_cents, created_at
FROM sales
WHERE id = $1
`, id).Scan(&s.ID, &s.Description, &s.TotalCents, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Add(ctx context.Context, description string, totalCents int64) (*domain.Sale, error) {
	var s domain.Sale
	err := r.pool.QueryRow(ctx, `
INSERT INTO sales (id, description, total_cents)
VALUES ($1, $2, $3)
RETURNING id::text, description, total_cents, created_at
`, uuid.New().String(), description, totalCents).Scan(&s.ID, &s.Description, &s.TotalCents, &s.CreatedAt)
	if err != nil {
		r.logger.Printf("sale repo: add error=%v", err)
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListByRange(ctx context.Context, start, end time.Time) ([]domain.Sale, error) {
	return r.scanMany(ctx, `
SELECT id::text, description, total_cents, created_at
FROM sales
WHERE created_at BETWEEN $1 AND $2
ORDER BY created_at DESC
`, start, end)
}

func (r *postgresRepo) ListToday(ctx context.Context) ([]domain.Sale, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return r.ListByRange(ctx, start, start.Add(24*time.Hour))
}

func (r *postgresRepo) scanMany(ctx context.Context, q string, args ...interface{}) ([]domain.Sale, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Sale{}
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.Description, &s.TotalCents, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
