// Package sales is the read-only daily aggregation over the receipt ledger.
// It holds no state and recomputes on every call.
package sales

import (
	"context"

	"tillmate/internal/domain"
	"tillmate/internal/money"
)

type ledger interface {
	ListLinesByDay(ctx context.Context, dayKey string) ([]domain.ReceiptLine, int64, error)
	ListReceiptsByDay(ctx context.Context, dayKey string) ([]domain.Receipt, error)
	ListLinesByReceipt(ctx context.Context, receiptID string) ([]domain.ReceiptLine, error)
	ListAllReceipts(ctx context.Context) ([]domain.Receipt, error)
}

type Service struct {
	ledger ledger
}

func New(ledger ledger) *Service {
	return &Service{ledger: ledger}
}

// Daily returns the receipt lines of one calendar day and their total.
// An empty dayKey means today.
func (s *Service) Daily(ctx context.Context, dayKey string) (domain.DailySales, error) {
	if dayKey == "" {
		dayKey = money.DayKeyNow()
	}
	items, total, err := s.ledger.ListLinesByDay(ctx, dayKey)
	if err != nil {
		return domain.DailySales{Items: []domain.ReceiptLine{}}, err
	}
	return domain.DailySales{Items: items, TotalCents: total}, nil
}

// Receipts lists the receipts of one calendar day, empty dayKey meaning today.
func (s *Service) Receipts(ctx context.Context, dayKey string) ([]domain.Receipt, error) {
	if dayKey == "" {
		dayKey = money.DayKeyNow()
	}
	return s.ledger.ListReceiptsByDay(ctx, dayKey)
}

// History lists all receipts, most recent first.
func (s *Service) History(ctx context.Context) ([]domain.Receipt, error) {
	return s.ledger.ListAllReceipts(ctx)
}

// ReceiptLines lists the lines of one receipt in purchase order.
func (s *Service) ReceiptLines(ctx context.Context, receiptID string) ([]domain.ReceiptLine, error) {
	return s.ledger.ListLinesByReceipt(ctx, receiptID)
}
