package adminzones

import (
	"context"

	"github.com/shopspring/decimal"
)

// APIClient defines the interface for Admin API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// GetDeliveryProfiles fetches all delivery profiles with their zones
	// and method definitions
	GetDeliveryProfiles(ctx context.Context) (*DeliveryProfilesResponse, error)

	// GetShop fetches shop-level configuration
	GetShop(ctx context.Context) (*ShopInfo, error)
}

// ============================================================================
// API Response Types (match Admin GraphQL API 2024-01 structure)
// ============================================================================

// MoneyV2 is the GraphQL money object. Amounts arrive as JSON strings.
type MoneyV2 struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// CountryCode wraps the nested country code field.
type CountryCode struct {
	CountryCode string `json:"countryCode"`
}

// ZoneCountry is one country entry within a zone.
type ZoneCountry struct {
	Code      CountryCode `json:"code"`
	Provinces []Province  `json:"provinces"`
}

// Province is a province entry within a zone country.
type Province struct {
	Code string `json:"code"`
}

// Zone is a geographic delivery zone.
type Zone struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Countries []ZoneCountry `json:"countries"`
}

// RateProvider carries the flat price of a method definition. Only
// definition-based providers have a price; carrier-calculated ones do not.
type RateProvider struct {
	ID    string   `json:"id"`
	Price *MoneyV2 `json:"price"`
}

// MethodDefinition is one shipping method configured for a zone.
type MethodDefinition struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	RateProvider *RateProvider `json:"rateProvider"`
}

// MethodDefinitionEdge wraps a method definition in connection form.
type MethodDefinitionEdge struct {
	Node MethodDefinition `json:"node"`
}

// LocationGroupZone pairs a zone with its method definitions.
type LocationGroupZone struct {
	Zone              Zone `json:"zone"`
	MethodDefinitions struct {
		Edges []MethodDefinitionEdge `json:"edges"`
	} `json:"methodDefinitions"`
}

// LocationGroupZoneEdge wraps a location group zone in connection form.
type LocationGroupZoneEdge struct {
	Node LocationGroupZone `json:"node"`
}

// ProfileLocationGroup is one location group within a delivery profile.
type ProfileLocationGroup struct {
	LocationGroupZones struct {
		Edges []LocationGroupZoneEdge `json:"edges"`
	} `json:"locationGroupZones"`
}

// DeliveryProfile is one delivery profile with its location groups.
type DeliveryProfile struct {
	ID                    string                 `json:"id"`
	Name                  string                 `json:"name"`
	ProfileLocationGroups []ProfileLocationGroup `json:"profileLocationGroups"`
}

// DeliveryProfileEdge wraps a delivery profile in connection form.
type DeliveryProfileEdge struct {
	Node DeliveryProfile `json:"node"`
}

// DeliveryProfilesResponse is the deliveryProfiles query result.
type DeliveryProfilesResponse struct {
	Edges []DeliveryProfileEdge `json:"edges"`
}

// ShopInfo is shop-level configuration from the Admin shop query.
type ShopInfo struct {
	Name                         string
	CurrencyCode                 string
	ShipsToCountries             []string
	EnabledPresentmentCurrencies []string
}

// APIError represents an error from the Admin API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
