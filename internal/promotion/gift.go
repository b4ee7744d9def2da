package promotion

import (
	"fmt"

	"basket-pricer/internal/basket"
	"basket-pricer/internal/model"
)

// ThresholdGift adds a fixed free product when a trigger product is present.
type ThresholdGift struct {
	triggerID string
	giftID    string
	giftName  string
}

// NewThresholdGift creates a gift rule.
func NewThresholdGift(triggerID, giftID, giftName string) *ThresholdGift {
	return &ThresholdGift{
		triggerID: triggerID,
		giftID:    giftID,
		giftName:  giftName,
	}
}

// Name identifies the promotion.
func (r *ThresholdGift) Name() string {
	return fmt.Sprintf("gift:%s->%s", r.triggerID, r.giftID)
}

// Gift returns a new zero-priced gift product when at least one trigger
// product is in the basket.
func (r *ThresholdGift) Gift(b *basket.Basket) (*model.Product, bool) {
	if b.Count(r.triggerID) < 1 {
		return nil, false
	}

	return model.NewGift(r.giftID, r.giftName), true
}
