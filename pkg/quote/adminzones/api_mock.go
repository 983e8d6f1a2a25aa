package adminzones

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGetDeliveryProfiles func(ctx context.Context) (*DeliveryProfilesResponse, error)
	OnGetShop             func(ctx context.Context) (*ShopInfo, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

func mockPrice(amount string) *RateProvider {
	return &RateProvider{
		ID: "gid://shopify/DeliveryRateDefinition/" + amount,
		Price: &MoneyV2{
			Amount:       decimal.RequireFromString(amount),
			CurrencyCode: "USD",
		},
	}
}

// GetDeliveryProfiles returns a mock delivery profile with a domestic zone
// and a North America zone.
func (m *MockAPIClient) GetDeliveryProfiles(ctx context.Context) (*DeliveryProfilesResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnGetDeliveryProfiles != nil {
		return m.OnGetDeliveryProfiles(ctx)
	}

	domestic := LocationGroupZone{
		Zone: Zone{
			ID:   "gid://shopify/DeliveryZone/1",
			Name: "Domestic",
			Countries: []ZoneCountry{
				{Code: CountryCode{CountryCode: "US"}},
			},
		},
	}
	domestic.MethodDefinitions.Edges = []MethodDefinitionEdge{
		{Node: MethodDefinition{
			ID:           "gid://shopify/DeliveryMethodDefinition/1",
			Name:         "Standard",
			Description:  "5-8 business days",
			RateProvider: mockPrice("5.99"),
		}},
		{Node: MethodDefinition{
			ID:           "gid://shopify/DeliveryMethodDefinition/2",
			Name:         "Express",
			Description:  "2-3 business days",
			RateProvider: mockPrice("14.99"),
		}},
	}

	northAmerica := LocationGroupZone{
		Zone: Zone{
			ID:   "gid://shopify/DeliveryZone/2",
			Name: "North America",
			Countries: []ZoneCountry{
				{Code: CountryCode{CountryCode: "CA"}},
				{Code: CountryCode{CountryCode: "MX"}},
			},
		},
	}
	northAmerica.MethodDefinitions.Edges = []MethodDefinitionEdge{
		{Node: MethodDefinition{
			ID:           "gid://shopify/DeliveryMethodDefinition/3",
			Name:         "International Standard",
			Description:  "7-14 business days",
			RateProvider: mockPrice("19.99"),
		}},
	}

	profile := DeliveryProfile{
		ID:   "gid://shopify/DeliveryProfile/1",
		Name: "General Profile",
	}
	profile.ProfileLocationGroups = []ProfileLocationGroup{{}}
	profile.ProfileLocationGroups[0].LocationGroupZones.Edges = []LocationGroupZoneEdge{
		{Node: domestic},
		{Node: northAmerica},
	}

	return &DeliveryProfilesResponse{
		Edges: []DeliveryProfileEdge{{Node: profile}},
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
		CurrencyCode:                 "USD",
		ShipsToCountries:             []string{"US", "CA", "MX"},
		EnabledPresentmentCurrencies: []string{"USD", "CAD"},
	}, nil
}

// Ensure MockAPIClient implements APIClient interface
var _ APIClient = (*MockAPIClient)(nil)
