package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeMissingProvider  = "MISSING_PROVIDER"
	ErrCodeInvalidItem      = "INVALID_ITEM"
	ErrCodeInvalidOperation = "INVALID_OPERATION"
	ErrCodeBasketTooLarge   = "BASKET_TOO_LARGE"
	ErrCodeRequestTooLarge  = "REQUEST_TOO_LARGE"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingProvider  = NewDomainError(ErrCodeMissingProvider, "Discount and gift providers are required")
	ErrInvalidItem      = NewDomainError(ErrCodeInvalidItem, "Basket item must have a non-empty product ID")
	ErrInvalidOperation = NewDomainError(ErrCodeInvalidOperation, "Unsupported basket operation")
	ErrBasketTooLarge   = NewDomainError(ErrCodeBasketTooLarge, "Basket exceeds the maximum number of units")
)
