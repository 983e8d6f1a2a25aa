package storefront

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCartCreate              func(ctx context.Context, input *CartInput, countryCode string) (*CartCreatePayload, error)
	OnCartBuyerIdentityUpdate func(ctx context.Context, cartID string, buyer *BuyerIdentityInput, countryCode string) (*CartBuyerIdentityUpdatePayload, error)
	OnGetVariant              func(ctx context.Context, variantGID, countryCode string) (*VariantNode, error)
	OnGetShop                 func(ctx context.Context) (*ShopInfo, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

func mockMoney(amount string) MoneyV2 {
	return MoneyV2{Amount: decimal.RequireFromString(amount), CurrencyCode: "USD"}
}

// CartCreate returns a mock cart.
func (m *MockAPIClient) CartCreate(ctx context.Context, input *CartInput, countryCode string) (*CartCreatePayload, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnCartCreate != nil {
		return m.OnCartCreate(ctx, input, countryCode)
	}

	cartID := "gid://shopify/Cart/" + uuid.New().String()[:8]
	return &CartCreatePayload{
		Cart: &Cart{
			ID:          cartID,
			CheckoutURL: "https://mock-store.myshopify.com/checkouts/" + uuid.New().String()[:8],
		},
	}, nil
}

// CartBuyerIdentityUpdate returns a mock cart with computed delivery options.
func (m *MockAPIClient) CartBuyerIdentityUpdate(ctx context.Context, cartID string, buyer *BuyerIdentityInput, countryCode string) (*CartBuyerIdentityUpdatePayload, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnCartBuyerIdentityUpdate != nil {
		return m.OnCartBuyerIdentityUpdate(ctx, cartID, buyer, countryCode)
	}

	return &CartBuyerIdentityUpdatePayload{
		Cart: &Cart{
			ID:          cartID,
			CheckoutURL: "https://mock-store.myshopify.com/checkouts/" + uuid.New().String()[:8],
			Cost: CartCost{
				TotalAmount:    mockMoney("38.48"),
				SubtotalAmount: mockMoney("29.99"),
				TotalTaxAmount: &MoneyV2{Amount: decimal.RequireFromString("2.50"), CurrencyCode: "USD"},
			},
			DeliveryGroups: DeliveryGroupConnection{
				Edges: []DeliveryGroupEdge{
					{
						Node: DeliveryGroup{
							DeliveryOptions: []DeliveryOption{
								{
									Handle:             "standard-shipping",
									Title:              "Standard Shipping",
									Description:        "5-8 business days",
									DeliveryMethodType: "SHIPPING",
									EstimatedCost:      mockMoney("5.99"),
								},
								{
									Handle:             "express-shipping",
									Title:              "Express Shipping",
									Description:        "2-3 business days",
									DeliveryMethodType: "SHIPPING",
									EstimatedCost:      mockMoney("14.99"),
								},
							},
						},
					},
				},
			},
		},
	}, nil
}

// GetVariant returns a mock variant.
func (m *MockAPIClient) GetVariant(ctx context.Context, variantGID, countryCode string) (*VariantNode, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnGetVariant != nil {
		return m.OnGetVariant(ctx, variantGID, countryCode)
	}

	return &VariantNode{
		ID:               variantGID,
		Title:            "Default Title",
		Price:            mockMoney("29.99"),
		AvailableForSale: true,
		Product: Product{
			ID:     "gid://shopify/Product/1001",
			Title:  "Mock Product",
			Handle: "mock-product",
		},
	}, nil
}

// GetShop returns mock shop configuration.
func (m *MockAPIClient) GetShop(ctx context.Context) (*ShopInfo, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnGetShop != nil {
		return m.OnGetShop(ctx)
	}

	return &ShopInfo{
		Name:                         "Mock Store",
		Domain:                       "mock-store.myshopify.com",
		EnabledPresentmentCurrencies: []string{"USD", "CAD", "EUR", "GBP"},
		ShipsToCountries:             []string{"US", "CA", "GB", "DE", "FR", "AU"},
	}, nil
}

// Ensure MockAPIClient implements APIClient interface
var _ APIClient = (*MockAPIClient)(nil)
