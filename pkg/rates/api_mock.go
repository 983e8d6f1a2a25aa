package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnLatest func(ctx context.Context, base string) (*LatestResponse, error)

	// CallCount tracks how many times Latest was invoked.
	CallCount int
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Latest returns a mock rate table.
func (m *MockAPIClient) Latest(ctx context.Context, base string) (*LatestResponse, error) {
	m.CallCount++

	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnLatest != nil {
		return m.OnLatest(ctx, base)
	}

	return &LatestResponse{
		Result:   "success",
		BaseCode: base,
		ConversionRates: map[string]decimal.Decimal{
			base:  decimal.NewFromInt(1),
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.85"),
			"GBP": decimal.RequireFromString("0.73"),
			"CAD": decimal.RequireFromString("1.37"),
			"JPY": decimal.RequireFromString("144.65"),
			"AUD": decimal.RequireFromString("1.53"),
			"INR": decimal.RequireFromString("85.56"),
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
