package model

import "github.com/shopspring/decimal"

// BasketLine groups basket entries sharing the same id and unit price.
type BasketLine struct {
	Product *Product `json:"product"`
	Units   int      `json:"units"`
}

// Subtotal returns unit price multiplied by the number of units.
func (l BasketLine) Subtotal() decimal.Decimal {
	return l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Units)))
}

// BasketDetails is the priced view of a basket.
type BasketDetails struct {
	Lines      []BasketLine
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// LineResponse represents a priced line in API responses.
type LineResponse struct {
	Product  *Product        `json:"product"`
	Units    int             `json:"units"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PriceBasketResponse represents the response payload for a priced basket.
type PriceBasketResponse struct {
	ID         string          `json:"id"`
	Lines      []LineResponse  `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// NewPriceBasketResponse converts basket details into the API shape.
func NewPriceBasketResponse(id string, details BasketDetails) *PriceBasketResponse {
	lines := make([]LineResponse, len(details.Lines))
	for i, line := range details.Lines {
		lines[i] = LineResponse{
			Product:  line.Product,
			Units:    line.Units,
			Subtotal: line.Subtotal(),
		}
	}

	return &PriceBasketResponse{
		ID:         id,
		Lines:      lines,
		Subtotal:   details.Subtotal,
		Discount:   details.Discount,
		GrandTotal: details.GrandTotal,
	}
}

// Basket operation names accepted by the pricing API.
const (
	OpAdd       = "add"
	OpRemove    = "remove"
	OpRemoveAll = "removeAll"
	OpEmpty     = "empty"
)

// PriceBasketRequest represents the request payload for pricing a basket.
// Operations are replayed in order on a fresh basket.
type PriceBasketRequest struct {
	Operations []BasketOperation `json:"operations" validate:"required,min=1,max=500,dive"`
}

// BasketOperation is a single basket mutation.
type BasketOperation struct {
	Op        string          `json:"op" validate:"required,oneof=add remove removeAll empty"`
	Product   *ProductRequest `json:"product,omitempty" validate:"required_if=Op add,omitempty"`
	ProductID string          `json:"productId,omitempty" validate:"required_if=Op remove,required_if=Op removeAll"`
	Quantity  int             `json:"quantity,omitempty" validate:"gte=0,lte=1000"`
}

// ProductRequest describes a product to add to the basket.
type ProductRequest struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// ToProduct builds the basket product described by the request.
func (r *ProductRequest) ToProduct() *Product {
	p := NewProduct(r.ID, r.Name, r.UnitPrice)
	p.Description = r.Description
	return p
}

// PromotionsResponse lists the registered promotion rules.
type PromotionsResponse struct {
	Discounts []string `json:"discounts"`
	Gifts     []string `json:"gifts"`
}
