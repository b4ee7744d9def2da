// Package basket holds the basket aggregate: its contents, the invariants on
// them and the orchestration of gift reconciliation and totals.
package basket

import (
	"slices"

	"basket-pricer/internal/model"

	"github.com/shopspring/decimal"
)

// DiscountProvider computes the total promotional discount for a basket.
type DiscountProvider interface {
	TotalDiscount(b *Basket) decimal.Decimal
}

// GiftProvider computes the free products a basket qualifies for.
type GiftProvider interface {
	GiftProducts(b *Basket) []*model.Product
}

// Basket is an ordered list of products, one entry per unit.
//
// Gifts are reconciled lazily: AddItem and the remove operations never touch
// gift entries, only Summary does. A Basket is not safe for concurrent use.
type Basket struct {
	discounts DiscountProvider
	gifts     GiftProvider
	products  []*model.Product
}

// New creates an empty basket. Both providers are required.
func New(discounts DiscountProvider, gifts GiftProvider) (*Basket, error) {
	if discounts == nil || gifts == nil {
		return nil, model.ErrMissingProvider
	}

	return &Basket{
		discounts: discounts,
		gifts:     gifts,
		products:  make([]*model.Product, 0),
	}, nil
}

// AddItem appends one unit of the product.
func (b *Basket) AddItem(p *model.Product) error {
	if p == nil || p.ID == "" {
		return model.ErrInvalidItem
	}

	b.products = append(b.products, p)
	return nil
}

// RemoveItem removes the first entry that is the given product instance.
// A nil or absent product is ignored.
func (b *Basket) RemoveItem(p *model.Product) {
	if p == nil {
		return
	}

	for i, existing := range b.products {
		if existing == p {
			b.products = slices.Delete(b.products, i, i+1)
			return
		}
	}
}

// RemoveAllOfType removes every entry with the given product ID.
func (b *Basket) RemoveAllOfType(id string) {
	if id == "" {
		return
	}

	b.removeWhere(func(p *model.Product) bool { return p.ID == id })
}

// Empty removes all entries.
func (b *Basket) Empty() {
	clear(b.products)
	b.products = b.products[:0]
}

// Products returns a copy of the basket entries in insertion order.
func (b *Basket) Products() []*model.Product {
	out := make([]*model.Product, len(b.products))
	copy(out, b.products)
	return out
}

// Len returns the number of entries in the basket.
func (b *Basket) Len() int {
	return len(b.products)
}

// Count returns how many entries carry the given product ID.
func (b *Basket) Count(id string) int {
	n := 0
	for _, p := range b.products {
		if p.ID == id {
			n++
		}
	}
	return n
}

// First returns the first entry with the given product ID in basket order.
func (b *Basket) First(id string) (*model.Product, bool) {
	for _, p := range b.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Subtotal returns the sum of unit prices over all entries, gifts included.
func (b *Basket) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.products {
		total = total.Add(p.UnitPrice)
	}
	return total
}

// Discount returns the total discount for the current contents.
func (b *Basket) Discount() decimal.Decimal {
	return b.discounts.TotalDiscount(b)
}

// GrandTotal returns subtotal minus discount. The result is not clamped, so
// a discount larger than the subtotal yields a negative total.
func (b *Basket) GrandTotal() decimal.Decimal {
	return b.Subtotal().Sub(b.Discount())
}

// Lines groups entries by (id, unit price) in order of first appearance.
// The first entry of each group is its representative product.
func (b *Basket) Lines() []model.BasketLine {
	index := make(map[string]int)
	lines := make([]model.BasketLine, 0)

	for _, p := range b.products {
		key := p.LineKey()
		if i, ok := index[key]; ok {
			lines[i].Units++
			continue
		}
		index[key] = len(lines)
		lines = append(lines, model.BasketLine{Product: p, Units: 1})
	}

	return lines
}

// Summary reconciles gifts and returns the priced basket. Calling it again
// without mutating the basket returns the same result.
func (b *Basket) Summary() model.BasketDetails {
	b.reconcileGifts()

	subtotal := b.Subtotal()
	discount := b.Discount()

	return model.BasketDetails{
		Lines:      b.Lines(),
		Subtotal:   subtotal,
		Discount:   discount,
		GrandTotal: subtotal.Sub(discount),
	}
}

// reconcileGifts drops every free entry and re-adds the gifts the current
// contents qualify for.
func (b *Basket) reconcileGifts() {
	b.removeWhere((*model.Product).IsFree)

	for _, gift := range b.gifts.GiftProducts(b) {
		// Gifts without an ID are dropped.
		_ = b.AddItem(gift)
	}
}

func (b *Basket) removeWhere(match func(p *model.Product) bool) {
	kept := b.products[:0]
	for _, p := range b.products {
		if !match(p) {
			kept = append(kept, p)
		}
	}
	clear(b.products[len(kept):])
	b.products = kept
}
