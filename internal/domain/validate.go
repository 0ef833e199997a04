package domain

import (
	"fmt"

	"tillmate/internal/money"
)

// ValidateCommit enforces the receipt/line invariants in one place, before
// any write happens. It checks the receipt itself, every line, and the
// cross-record invariants (parent id, day key, total).
func ValidateCommit(receipt Receipt, lines []ReceiptLine) error {
	if receipt.ReceiptID == "" {
		return &ValidationError{Field: "receiptId", Reason: "required"}
	}
	if receipt.CreatedAt.IsZero() {
		return &ValidationError{Field: "createdAt", Reason: "required"}
	}
	if !money.ValidDayKey(receipt.DayKey) {
		return &ValidationError{Field: "dayKey", Reason: "must be YYYY-MM-DD"}
	}
	if receipt.TotalCents < 0 {
		return &ValidationError{Field: "totalCents", Reason: "must be >= 0"}
	}

	var sum int64
	for i, line := range lines {
		field := func(name string) string {
			return fmt.Sprintf("lines[%d].%s", i, name)
		}
		if line.ID == "" {
			return &ValidationError{Field: field("id"), Reason: "required"}
		}
		if line.ReceiptID != receipt.ReceiptID {
			return &ValidationError{Field: field("receiptId"), Reason: "must match receipt"}
		}
		if line.ItemNumber == "" {
			return &ValidationError{Field: field("itemNumber"), Reason: "required"}
		}
		if line.Description == "" {
			return &ValidationError{Field: field("description"), Reason: "required"}
		}
		if line.UnitPriceCents < 0 {
			return &ValidationError{Field: field("unitPriceCents"), Reason: "must be >= 0"}
		}
		if line.DayKey != receipt.DayKey {
			return &ValidationError{Field: field("dayKey"), Reason: "must match receipt"}
		}
		sum += line.UnitPriceCents
	}
	if receipt.TotalCents != sum {
		return &ValidationError{Field: "totalCents", Reason: "must equal sum of line prices"}
	}
	return nil
}
