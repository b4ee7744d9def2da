package service

import (
	"context"

	"basket-pricer/internal/model"
)

// PricingService defines the interface for basket pricing.
type PricingService interface {
	// PriceBasket replays the requested operations on a new basket and returns
	// its gift-reconciled summary.
	PriceBasket(ctx context.Context, req *model.PriceBasketRequest) (*model.PriceBasketResponse, error)

	// Promotions lists the registered discount and gift rules.
	Promotions(ctx context.Context) *model.PromotionsResponse
}
