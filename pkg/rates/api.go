package rates

import (
	"context"

	"github.com/shopspring/decimal"
)

// APIClient defines the interface for the exchange-rate provider.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// Latest fetches the current rate table for the given base currency.
	Latest(ctx context.Context, base string) (*LatestResponse, error)
}

// LatestResponse is the provider's "latest rates" payload.
// GET /v6/{key}/latest/{base}
type LatestResponse struct {
	Result          string                     `json:"result"` // "success" or "error"
	ErrorType       string                     `json:"error-type,omitempty"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// APIError represents an error from the exchange-rate API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
