package promotion

import (
	"fmt"

	"basket-pricer/internal/basket"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// MultiPackDiscount halves the price of every unit of a product after the
// first one.
type MultiPackDiscount struct {
	productID string
}

// NewMultiPackDiscount creates a multi-pack rule for the given product.
func NewMultiPackDiscount(productID string) *MultiPackDiscount {
	return &MultiPackDiscount{productID: productID}
}

// Name identifies the promotion.
func (r *MultiPackDiscount) Name() string {
	return fmt.Sprintf("multi-pack:%s", r.productID)
}

// Discount returns (count - 1) * price / 2 when the product appears more than
// once. The price is taken from the first matching entry.
func (r *MultiPackDiscount) Discount(b *basket.Basket) decimal.Decimal {
	count := b.Count(r.productID)
	if count <= 1 {
		return decimal.Zero
	}

	first, _ := b.First(r.productID)
	halfPrice := first.UnitPrice.Div(two)

	return halfPrice.Mul(decimal.NewFromInt(int64(count - 1)))
}

// BulkThresholdDiscount takes a percentage off the whole basket once a
// product is bought in more than a threshold quantity.
type BulkThresholdDiscount struct {
	productID string
	threshold int
	rate      decimal.Decimal
}

// NewBulkThresholdDiscount creates a bulk rule. rate is a fraction, e.g. 0.3.
func NewBulkThresholdDiscount(productID string, threshold int, rate decimal.Decimal) *BulkThresholdDiscount {
	return &BulkThresholdDiscount{
		productID: productID,
		threshold: threshold,
		rate:      rate,
	}
}

// Name identifies the promotion.
func (r *BulkThresholdDiscount) Name() string {
	return fmt.Sprintf("bulk:%s>%d", r.productID, r.threshold)
}

// Discount returns rate * basket subtotal when the product count strictly
// exceeds the threshold.
func (r *BulkThresholdDiscount) Discount(b *basket.Basket) decimal.Decimal {
	if b.Count(r.productID) <= r.threshold {
		return decimal.Zero
	}

	return b.Subtotal().Mul(r.rate)
}
