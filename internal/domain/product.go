package domain

import "time"

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Category   string    `json:"category"`
	SKU        string    `json:"sku,omitempty"`
	Stock      *int      `json:"stock,omitempty"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ItemNumber is the identifier printed on receipt lines: the SKU when the
// product has one, the product id otherwise.
func (p Product) ItemNumber() string {
	if p.SKU != "" {
		return p.SKU
	}
	return p.ID
}
