package domain

import "time"

// Receipt is the durable record of one completed checkout. It is written
// exactly once together with its lines and never mutated afterwards.
type Receipt struct {
	ReceiptID    string    `json:"receiptId"`
	CreatedAt    time.Time `json:"createdAt"`
	DayKey       string    `json:"dayKey"`
	TotalCents   int64     `json:"totalCents"`
	CustomerName *string   `json:"customerName,omitempty"`
}

// ReceiptLine is one purchased item within a receipt. Its day key always
// equals the parent receipt's day key.
type ReceiptLine struct {
	ID             string `json:"id"`
	ReceiptID      string `json:"receiptId"`
	ItemNumber     string `json:"itemNumber"`
	Description    string `json:"description"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	DayKey         string `json:"dayKey"`
}

// DailySales is the aggregation of one calendar day's receipt lines.
type DailySales struct {
	Items      []ReceiptLine `json:"items"`
	TotalCents int64         `json:"totalCents"`
}
