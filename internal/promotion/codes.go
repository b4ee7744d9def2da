package promotion

import "github.com/shopspring/decimal"

// Catalog codes and thresholds used by the built-in promotions.
const (
	MultiPackProductID   = "RP-25D-SITB"
	BulkProductID        = "RP-5NS-DITB"
	BulkThreshold        = 100
	GiftTriggerProductID = "RP-1TB-EITB"
	GiftProductID        = "RP-RPM-FITB"
	GiftProductName      = "Paper Mask"
)

// DefaultBulkRate returns the share of the whole basket subtotal discounted
// once the bulk threshold is exceeded: 0.3.
func DefaultBulkRate() decimal.Decimal {
	return decimal.New(3, -1)
}

// Codes configures the built-in promotion rules.
type Codes struct {
	MultiPackProductID   string
	BulkProductID        string
	BulkThreshold        int
	BulkRate             decimal.Decimal
	GiftTriggerProductID string
	GiftProductID        string
	GiftProductName      string
}

// DefaultCodes returns the standard promotion configuration.
func DefaultCodes() Codes {
	return Codes{
		MultiPackProductID:   MultiPackProductID,
		BulkProductID:        BulkProductID,
		BulkThreshold:        BulkThreshold,
		BulkRate:             DefaultBulkRate(),
		GiftTriggerProductID: GiftTriggerProductID,
		GiftProductID:        GiftProductID,
		GiftProductName:      GiftProductName,
	}
}

// NewDefaultEngines builds the engines with the built-in rules registered in
// their standard order.
func NewDefaultEngines(codes Codes) (*DiscountEngine, *GiftEngine) {
	discounts := NewDiscountEngine(
		NewMultiPackDiscount(codes.MultiPackProductID),
		NewBulkThresholdDiscount(codes.BulkProductID, codes.BulkThreshold, codes.BulkRate),
	)
	gifts := NewGiftEngine(
		NewThresholdGift(codes.GiftTriggerProductID, codes.GiftProductID, codes.GiftProductName),
	)
	return discounts, gifts
}
