package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"basket-pricer/internal/model"
	"basket-pricer/internal/service"

	"github.com/rs/zerolog"
)

// MaxRequestBodyBytes limits the size of a pricing request body.
const MaxRequestBodyBytes = 256 << 10

// BasketHandler handles basket pricing HTTP requests.
type BasketHandler struct {
	service service.PricingService
	logger  zerolog.Logger
}

// NewBasketHandler creates a new basket handler.
func NewBasketHandler(service service.PricingService, logger zerolog.Logger) *BasketHandler {
	return &BasketHandler{
		service: service,
		logger:  logger.With().Str("handler", "basket").Logger(),
	}
}

// Price handles POST /api/baskets/price requests.
func (h *BasketHandler) Price(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)

	var req model.PriceBasketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge, model.ErrCodeRequestTooLarge, "request body too large", h.logger)
			return
		}
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.PriceBasket(r.Context(), &req)
	if err != nil {
		status, code, message := classifyError(err)
		writeError(w, r, status, code, message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Promotions handles GET /api/promotions requests.
func (h *BasketHandler) Promotions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Promotions(r.Context()))
}

// classifyError maps a pricing error to a status code, error code and message.
func classifyError(err error) (int, string, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, model.ErrCodeValidation, validationErr.Error()
	}

	if errors.Is(err, model.ErrMissingProvider) {
		return http.StatusInternalServerError, model.ErrCodeInternalError, "failed to price basket"
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusBadRequest, domainErr.Code, err.Error()
	}

	return http.StatusInternalServerError, model.ErrCodeInternalError, "failed to price basket"
}
