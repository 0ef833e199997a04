package receipt

import (
	"context"
	"io"
	"log"

	"tillmate/internal/domain"
	"tillmate/internal/money"

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

func (r *postgresRepo) CommitReceipt(ctx context.Context, receipt domain.Receipt, lines []domain.ReceiptLine) error {
	if err := domain.ValidateCommit(receipt, lines); err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return &domain.PersistenceError{Op: "commit receipt", Err: err}
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO receipts (receipt_id, created_at, day_key, total_cents, customer_name)
VALUES ($1, $2, $3, $4, $5)
`, receipt.ReceiptID, receipt.CreatedAt, receipt.DayKey, receipt.TotalCents, receipt.CustomerName); err != nil {
		r.logger.Printf("receipt repo: insert receipt id=%s error=%v", receipt.ReceiptID, err)
		return &domain.PersistenceError{Op: "commit receipt", Err: err}
	}

	for i, line := range lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO receipt_lines (id, receipt_id, position, item_number, description, unit_price_cents, day_key)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, line.ID, line.ReceiptID, i, line.ItemNumber, line.Description, line.UnitPriceCents, line.DayKey); err != nil {
			r.logger.Printf("receipt repo: insert line id=%s error=%v", line.ID, err)
			return &domain.PersistenceError{Op: "commit receipt", Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.PersistenceError{Op: "commit receipt", Err: err}
	}
	r.logger.Printf("receipt repo: committed id=%s lines=%d total=%d", receipt.ReceiptID, len(lines), receipt.TotalCents)
	return nil
}

func (r *postgresRepo) ListLinesByDay(ctx context.Context, dayKey string) ([]domain.ReceiptLine, int64, error) {
	if !money.ValidDayKey(dayKey) {
		return nil, 0, &domain.ValidationError{Field: "dayKey", Reason: "must be YYYY-MM-DD"}
	}

	const q = `
SELECT l.id, l.receipt_id::text, l.item_number, l.description, l.unit_price_cents, l.day_key
FROM receipt_lines l
JOIN receipts r ON r.receipt_id = l.receipt_id
WHERE l.day_key = $1
ORDER BY r.created_at ASC, l.position ASC
`
	lines, err := r.scanLines(ctx, q, dayKey)
	if err != nil {
		r.logger.Printf("receipt repo: list lines day=%s error=%v (returning empty)", dayKey, err)
		return []domain.ReceiptLine{}, 0, nil
	}
	var total int64
	for _, l := range lines {
		total += l.UnitPriceCents
	}
	return lines, total, nil
}

func (r *postgresRepo) ListReceiptsByDay(ctx context.Context, dayKey string) ([]domain.Receipt, error) {
	if !money.ValidDayKey(dayKey) {
		return nil, &domain.ValidationError{Field: "dayKey", Reason: "must be YYYY-MM-DD"}
	}

	const q = `
SELECT receipt_id::text, created_at, day_key, total_cents, customer_name
FROM receipts
WHERE day_key = $1
ORDER BY created_at ASC
`
	receipts, err := r.scanReceipts(ctx, q, dayKey)
	if err != nil {
		r.logger.Printf("receipt repo: list receipts day=%s error=%v (returning empty)", dayKey, err)
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (r *postgresRepo) ListLinesByReceipt(ctx context.Context, receiptID string) ([]domain.ReceiptLine, error) {
	if receiptID == "" {
		return nil, &domain.ValidationError{Field: "receiptId", Reason: "required"}
	}

	const q = `
SELECT id, receipt_id::text, item_number, description, unit_price_cents, day_key
FROM receipt_lines
WHERE receipt_id = $1
ORDER BY position ASC
`
	lines, err := r.scanLines(ctx, q, receiptID)
	if err != nil {
		r.logger.Printf("receipt repo: list lines receipt=%s error=%v (returning empty)", receiptID, err)
		return []domain.ReceiptLine{}, nil
	}
	return lines, nil
}

func (r *postgresRepo) ListAllReceipts(ctx context.Context) ([]domain.Receipt, error) {
	const q = `
SELECT receipt_id::text, created_at, day_key, total_cents, customer_name
FROM receipts
ORDER BY created_at DESC
`
	receipts, err := r.scanReceipts(ctx, q)
	if err != nil {
		r.logger.Printf("receipt repo: list all receipts error=%v (returning empty)", err)
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (r *postgresRepo) scanLines(ctx context.Context, q string, args ...interface{}) ([]domain.ReceiptLine, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ReceiptLine{}
	for rows.Next() {
		var l domain.ReceiptLine
		if err := rows.Scan(&l.ID, &l.ReceiptID, &l.ItemNumber, &l.Description, &l.UnitPriceCents, &l.DayKey); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanReceipts(ctx context.Context, q string, args ...interface{}) ([]domain.Receipt, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Receipt{}
	for rows.Next() {
		var rec domain.Receipt
		if err := rows.Scan(&rec.ReceiptID, &rec.CreatedAt, &rec.DayKey, &rec.TotalCents, &rec.CustomerName); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
