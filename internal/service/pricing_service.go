package service

import (
	"context"
	"fmt"

	"basket-pricer/internal/basket"
	"basket-pricer/internal/metrics"
	"basket-pricer/internal/model"
	"basket-pricer/internal/promotion"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// pricingService implements PricingService.
type pricingService struct {
	discounts *promotion.DiscountEngine
	gifts     *promotion.GiftEngine
	validate  *validator.Validate
	metrics   *metrics.Recorder
	logger    zerolog.Logger
}

// NewPricingService creates a new pricing service. The engines are shared by
// every request; each request gets its own basket. rec may be nil.
func NewPricingService(
	discounts *promotion.DiscountEngine,
	gifts *promotion.GiftEngine,
	rec *metrics.Recorder,
	logger zerolog.Logger,
) PricingService {
	return &pricingService{
		discounts: discounts,
		gifts:     gifts,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		metrics:   rec,
		logger:    logger.With().Str("service", "pricing").Logger(),
	}
}

// PriceBasket replays the requested operations on a new basket and returns
// its gift-reconciled summary.
func (s *pricingService) PriceBasket(ctx context.Context, req *model.PriceBasketRequest) (*model.PriceBasketResponse, error) {
	if err := s.validateRequest(req); err != nil {
		s.metrics.ObserveRejected()
		return nil, err
	}

	b, err := s.newBasket()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create basket")
		return nil, fmt.Errorf("failed to create basket: %w", err)
	}

	for i, op := range req.Operations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := apply(b, op); err != nil {
			s.logger.Warn().
				Int("operation_index", i).
				Str("op", op.Op).
				Err(err).
				Msg("basket operation rejected")
			s.metrics.ObserveRejected()
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}

	details := b.Summary()
	id := uuid.New().String()

	gifts := 0
	for _, line := range details.Lines {
		if line.Product.IsGift {
			gifts += line.Units
		}
	}
	discount, _ := details.Discount.Float64()
	s.metrics.ObservePriced(len(details.Lines), gifts, discount)

	s.logger.Info().
		Str("basket_id", id).
		Int("operations", len(req.Operations)).
		Int("lines", len(details.Lines)).
		Int("gifts", gifts).
		Str("subtotal", details.Subtotal.String()).
		Str("discount", details.Discount.String()).
		Str("grand_total", details.GrandTotal.String()).
		Msg("basket priced")

	return model.NewPriceBasketResponse(id, details), nil
}

// newBasket creates a basket over the configured engines. A nil engine
// pointer would otherwise reach basket.New as a non-nil interface.
func (s *pricingService) newBasket() (*basket.Basket, error) {
	if s.discounts == nil || s.gifts == nil {
		return nil, model.ErrMissingProvider
	}

	return basket.New(s.discounts, s.gifts)
}

// Promotions lists the registered discount and gift rules.
func (s *pricingService) Promotions(ctx context.Context) *model.PromotionsResponse {
	return &model.PromotionsResponse{
		Discounts: s.discounts.Names(),
		Gifts:     s.gifts.Names(),
	}
}

// validateRequest validates the pricing request.
func (s *pricingService) validateRequest(req *model.PriceBasketRequest) error {
	if req == nil {
		return fmt.Errorf("pricing request is nil")
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Debug().Err(err).Msg("pricing request validation failed")
		return &ValidationError{Err: err}
	}

	return nil
}

// MaxBasketUnits caps the number of entries a single request may build.
const MaxBasketUnits = 10_000

// apply performs a single operation on the basket.
func apply(b *basket.Basket, op model.BasketOperation) error {
	switch op.Op {
	case model.OpAdd:
		if op.Product == nil {
			return model.ErrInvalidItem
		}
		quantity := op.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if b.Len()+quantity > MaxBasketUnits {
			return model.ErrBasketTooLarge
		}
		// All units share one product instance, like a shopper adding the
		// same catalog item repeatedly.
		product := op.Product.ToProduct()
		for n := 0; n < quantity; n++ {
			if err := b.AddItem(product); err != nil {
				return err
			}
		}
	case model.OpRemove:
		if p, ok := b.First(op.ProductID); ok {
			b.RemoveItem(p)
		}
	case model.OpRemoveAll:
		b.RemoveAllOfType(op.ProductID)
	case model.OpEmpty:
		b.Empty()
	default:
		return model.ErrInvalidOperation
	}

	return nil
}

// ValidationError reports a request that failed struct validation.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid pricing request: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
