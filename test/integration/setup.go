package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"basket-pricer/internal/handler"
	"basket-pricer/internal/metrics"
	"basket-pricer/internal/model"
	"basket-pricer/internal/promotion"
	"basket-pricer/internal/router"
	"basket-pricer/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// TestServer wires the full HTTP stack with the default promotions.
type TestServer struct {
	Handler  http.Handler
	Registry *prometheus.Registry
}

// SetupTestServer builds a router backed by a fresh metrics registry.
func SetupTestServer(t *testing.T) *TestServer {
	t.Helper()

	logger := zerolog.Nop()
	registry := prometheus.NewRegistry()
	recorder := metrics.New("basket_pricer", registry)

	discounts, gifts := promotion.NewDefaultEngines(promotion.DefaultCodes())
	pricingService := service.NewPricingService(discounts, gifts, recorder, logger)
	basketHandler := handler.NewBasketHandler(pricingService, logger)

	return &TestServer{
		Handler: router.New(basketHandler, router.Options{
			APIKey:         testAPIKey,
			AllowedOrigins: []string{"*"},
			Metrics:        recorder,
			Gatherer:       registry,
		}, logger),
		Registry: registry,
	}
}

// Price posts the operations to the pricing endpoint.
func (s *TestServer) Price(t *testing.T, ops ...model.BasketOperation) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(&model.PriceBasketRequest{Operations: ops})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/baskets/price", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	w := httptest.NewRecorder()

	s.Handler.ServeHTTP(w, req)
	return w
}

// DecodePrice decodes a successful pricing response.
func DecodePrice(t *testing.T, w *httptest.ResponseRecorder) model.PriceBasketResponse {
	t.Helper()

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.PriceBasketResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// Add builds an add operation.
func Add(id, price string, quantity int) model.BasketOperation {
	return model.BasketOperation{
		Op: model.OpAdd,
		Product: &model.ProductRequest{
			ID:        id,
			Name:      id,
			UnitPrice: decimal.RequireFromString(price),
		},
		Quantity: quantity,
	}
}

// Remove builds a single-unit remove operation.
func Remove(id string) model.BasketOperation {
	return model.BasketOperation{Op: model.OpRemove, ProductID: id}
}

// RemoveAll builds a remove-all operation.
func RemoveAll(id string) model.BasketOperation {
	return model.BasketOperation{Op: model.OpRemoveAll, ProductID: id}
}

// Empty builds an empty operation.
func Empty() model.BasketOperation {
	return model.BasketOperation{Op: model.OpEmpty}
}
