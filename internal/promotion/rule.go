// Package promotion implements the discount and gift rules applied to a
// basket and the engines that aggregate them.
package promotion

import (
	"basket-pricer/internal/basket"
	"basket-pricer/internal/model"

	"github.com/shopspring/decimal"
)

// DiscountRule computes a monetary reduction from basket contents.
// Implementations must not mutate the basket or its products and return
// zero when they do not apply.
type DiscountRule interface {
	// Name identifies the promotion.
	Name() string

	// Discount returns the non-negative amount to subtract.
	Discount(b *basket.Basket) decimal.Decimal
}

// GiftRule computes an optional free product from basket contents.
type GiftRule interface {
	// Name identifies the promotion.
	Name() string

	// Gift returns the free product and true, or nil and false.
	Gift(b *basket.Basket) (*model.Product, bool)
}
