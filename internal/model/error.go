package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInvalidJSON      = "INVALID_JSON"
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
	ErrItemNotFound         = NewDomainError(ErrCodeNotFound, "Menu item not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidInput, "Quantity must be greater than zero")
	ErrConfirmationRequired = NewDomainError(ErrCodeInvalidInput, "Delete requires explicit confirmation")
	ErrInvalidCredentials   = NewDomainError(ErrCodeUnauthorised, "Invalid username or password")
	ErrStoreUnavailable     = NewDomainError(ErrCodeStoreUnavailable, "Store is unreachable")
)
