package quote

import (
	"errors"
	"fmt"
)

// QuoteError represents an error from a quote provider.
type QuoteError struct {
	Provider   string
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *QuoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Provider, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Provider, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *QuoteError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for QuoteError.
func (e *QuoteError) Is(target error) bool {
	t, ok := target.(*QuoteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewQuoteError creates a new QuoteError.
func NewQuoteError(provider, code, message string) *QuoteError {
	return &QuoteError{
		Provider: provider,
		Code:     code,
		Message:  message,
	}
}

// WithCause adds a cause to the error.
func (e *QuoteError) WithCause(err error) *QuoteError {
	e.Cause = err
	return e
}

// WithStatusCode adds an upstream HTTP status code to the error.
func (e *QuoteError) WithStatusCode(code int) *QuoteError {
	e.StatusCode = code
	return e
}

// Sentinel errors for the quote pipeline.
var (
	// ErrInvalidInput indicates a bad country, currency, or missing variant.
	// Raised before any upstream call; always caller-attributable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrVariantUnavailable indicates the variant exists but is not sellable.
	ErrVariantUnavailable = errors.New("variant not available for sale")

	// ErrPrimaryQuoteFailed indicates the cart-based estimate could not be
	// produced. Internal: it triggers the zone fallback, never the caller.
	ErrPrimaryQuoteFailed = errors.New("primary quote failed")

	// ErrAdminQuoteFailed indicates the zone-based fallback could not be
	// produced. Internal: it triggers the aggregate failure.
	ErrAdminQuoteFailed = errors.New("admin quote failed")

	// ErrQuoteUnavailable indicates both provider tiers failed. This is the
	// only post-validation failure surfaced to callers.
	ErrQuoteUnavailable = errors.New("quote unavailable")
)
