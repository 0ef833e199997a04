package sales

import (
	"context"
	"reflect"
	"testing"

	"tillmate/internal/domain"
	"tillmate/internal/money"
)

type stubLedger struct {
	lines      []domain.ReceiptLine
	total      int64
	linesErr   error
	receipts   []domain.Receipt
	lastDayKey string
	calls      int
}

func (s *stubLedger) ListLinesByDay(_ context.Context, dayKey string) ([]domain.ReceiptLine, int64, error) {
	s.lastDayKey = dayKey
	s.calls++
	if s.linesErr != nil {
		return nil, 0, s.linesErr
	}
	return s.lines, s.total, nil
}

func (s *stubLedger) ListReceiptsByDay(_ context.Context, dayKey string) ([]domain.Receipt, error) {
	s.lastDayKey = dayKey
	return s.receipts, nil
}

func (s *stubLedger) ListLinesByReceipt(_ context.Context, _ string) ([]domain.ReceiptLine, error) {
	return s.lines, nil
}

func (s *stubLedger) ListAllReceipts(_ context.Context) ([]domain.Receipt, error) {
	return s.receipts, nil
}

func TestDailyDefaultsToToday(t *testing.T) {
	ledger := &stubLedger{}
	svc := New(ledger)
	if _, err := svc.Daily(context.Background(), ""); err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if ledger.lastDayKey != money.DayKeyNow() {
		t.Fatalf("day key = %q, want today's", ledger.lastDayKey)
	}
}

func TestDailyIsIdempotent(t *testing.T) {
	ledger := &stubLedger{
		lines: []domain.ReceiptLine{
			{ID: "l1", UnitPriceCents: 100},
			{ID: "l2", UnitPriceCents: 200},
		},
		total: 300,
	}
	svc := New(ledger)

	first, err := svc.Daily(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("first Daily: %v", err)
	}
	second, err := svc.Daily(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("second Daily: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated reads differ: %+v vs %+v", first, second)
	}
	if first.TotalCents != 300 {
		t.Fatalf("total = %d, want 300", first.TotalCents)
	}
}

func TestDailyValidationErrorPropagates(t *testing.T) {
	ledger := &stubLedger{linesErr: &domain.ValidationError{Field: "dayKey", Reason: "must be YYYY-MM-DD"}}
	svc := New(ledger)
	got, err := svc.Daily(context.Background(), "bogus")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(got.Items) != 0 || got.TotalCents != 0 {
		t.Fatalf("error path should yield empty result, got %+v", got)
	}
}

func TestReceiptsDefaultsToToday(t *testing.T) {
	ledger := &stubLedger{}
	svc := New(ledger)
	if _, err := svc.Receipts(context.Background(), ""); err != nil {
		t.Fatalf("Receipts: %v", err)
	}
	if ledger.lastDayKey != money.DayKeyNow() {
		t.Fatalf("day key = %q, want today's", ledger.lastDayKey)
	}
}
