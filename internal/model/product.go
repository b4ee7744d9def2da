package model

import "github.com/shopspring/decimal"

// Product represents a single unit placed in a basket.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	IsGift      bool            `json:"isGift,omitempty"`
}

// NewProduct creates a regular (non-gift) product. The price is not validated.
func NewProduct(id, name string, unitPrice decimal.Decimal) *Product {
	return &Product{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
	}
}

// NewGift creates a free product. A zero unit price is what marks a basket
// entry as a gift during reconciliation.
func NewGift(id, name string) *Product {
	return &Product{
		ID:        id,
		Name:      name,
		UnitPrice: decimal.Zero,
		IsGift:    true,
	}
}

// LineKey returns the (id, unit price) key used to group identical entries.
// Numerically equal prices produce the same key.
func (p *Product) LineKey() string {
	return p.ID + "|" + p.UnitPrice.String()
}

// IsFree reports whether the product costs nothing.
func (p *Product) IsFree() bool {
	return p.UnitPrice.IsZero()
}
