package promotion

import (
	"basket-pricer/internal/basket"
	"basket-pricer/internal/model"

	"github.com/shopspring/decimal"
)

// DiscountEngine sums the discounts of its rules. The rule list is fixed at
// construction, so an engine can be shared by many baskets.
type DiscountEngine struct {
	rules []DiscountRule
}

var _ basket.DiscountProvider = (*DiscountEngine)(nil)

// NewDiscountEngine creates an engine over the given rules.
func NewDiscountEngine(rules ...DiscountRule) *DiscountEngine {
	return &DiscountEngine{rules: append([]DiscountRule(nil), rules...)}
}

// TotalDiscount returns the sum of every rule's discount.
func (e *DiscountEngine) TotalDiscount(b *basket.Basket) decimal.Decimal {
	total := decimal.Zero
	for _, rule := range e.rules {
		total = total.Add(rule.Discount(b))
	}
	return total
}

// Names returns the rule names in registration order.
func (e *DiscountEngine) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, len(e.rules))
	for i, rule := range e.rules {
		names[i] = rule.Name()
	}
	return names
}

// GiftEngine collects the gifts of its rules.
type GiftEngine struct {
	rules []GiftRule
}

var _ basket.GiftProvider = (*GiftEngine)(nil)

// NewGiftEngine creates an engine over the given rules.
func NewGiftEngine(rules ...GiftRule) *GiftEngine {
	return &GiftEngine{rules: append([]GiftRule(nil), rules...)}
}

// GiftProducts returns the gifts of every applicable rule in registration
// order.
func (e *GiftEngine) GiftProducts(b *basket.Basket) []*model.Product {
	gifts := make([]*model.Product, 0, len(e.rules))
	for _, rule := range e.rules {
		if gift, ok := rule.Gift(b); ok {
			gifts = append(gifts, gift)
		}
	}
	return gifts
}

// Names returns the rule names in registration order.
func (e *GiftEngine) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, len(e.rules))
	for i, rule := range e.rules {
		names[i] = rule.Name()
	}
	return names
}
