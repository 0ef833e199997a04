package receipt

import (
	"context"

	"tillmate/internal/domain"
)

// Repository is the ledger store: durable receipts and receipt lines with
// day-key and parent-id access paths.
//
// CommitReceipt validates everything before writing and persists the receipt
// together with all its lines in one transaction; no partial state is ever
// observable. The day-key read paths degrade to an empty result on storage
// faults (logged, not propagated); malformed input still returns a
// ValidationError.
type Repository interface {
	CommitReceipt(ctx context.Context, receipt domain.Receipt, lines []domain.ReceiptLine) error
	ListLinesByDay(ctx context.Context, dayKey string) ([]domain.ReceiptLine, int64, error)
	ListReceiptsByDay(ctx context.Context, dayKey string) ([]domain.Receipt, error)
	ListLinesByReceipt(ctx context.Context, receiptID string) ([]domain.ReceiptLine, error)
	ListAllReceipts(ctx context.Context) ([]domain.Receipt, error)
}
