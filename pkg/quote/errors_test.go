package quote_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/shipquote/pkg/quote"
)

func TestQuoteError_Error(t *testing.T) {
	err := quote.NewQuoteError("storefront", "CART_CREATE", "Cart creation rejected")
	assert.Equal(t, "storefront error (CART_CREATE): Cart creation rejected", err.Error())
}

func TestQuoteError_ErrorWithCause(t *testing.T) {
	cause := errors.New("network timeout")
	err := quote.NewQuoteError("storefront", "API_ERROR", "API call failed").WithCause(cause)
	assert.Contains(t, err.Error(), "API call failed")
	assert.Contains(t, err.Error(), "network timeout")
}

func TestQuoteError_Unwrap(t *testing.T) {
	cause := errors.New("network timeout")
	err := quote.NewQuoteError("storefront", "API_ERROR", "API call failed").WithCause(cause)
	assert.True(t, errors.Is(err, cause))
}

func TestQuoteError_Is(t *testing.T) {
	err1 := quote.NewQuoteError("storefront", "CART_CREATE", "Cart creation rejected")
	err2 := quote.NewQuoteError("adminzones", "CART_CREATE", "Different message")

	// Same code should match
	assert.True(t, errors.Is(err1, err2))
}

func TestQuoteError_IsNot(t *testing.T) {
	err1 := quote.NewQuoteError("storefront", "CART_CREATE", "Cart creation rejected")
	err2 := quote.NewQuoteError("storefront", "DIFFERENT_CODE", "Different error")

	// Different codes should not match
	assert.False(t, errors.Is(err1, err2))
}

func TestQuoteError_WithStatusCode(t *testing.T) {
	err := quote.NewQuoteError("storefront", "AUTH_ERROR", "Unauthorized").WithStatusCode(401)
	assert.Equal(t, 401, err.StatusCode)
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", quote.ErrInvalidInput},
		{"ErrVariantUnavailable", quote.ErrVariantUnavailable},
		{"ErrPrimaryQuoteFailed", quote.ErrPrimaryQuoteFailed},
		{"ErrAdminQuoteFailed", quote.ErrAdminQuoteFailed},
		{"ErrQuoteUnavailable", quote.ErrQuoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}
