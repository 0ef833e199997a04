package domain

import "time"

// Sale is the legacy sales record kept from store version 1. New checkouts
// write receipts instead; the collection remains readable for old data.
type Sale struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	TotalCents  int64     `json:"totalCents"`
	CreatedAt   time.Time `json:"createdAt"`
}
