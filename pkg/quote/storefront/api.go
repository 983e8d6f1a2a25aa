package storefront

import (
	"context"

	"github.com/shopspring/decimal"
)

// APIClient defines the interface for Storefront API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// CartCreate creates a cart with the given lines and buyer identity
	CartCreate(ctx context.Context, input *CartInput, countryCode string) (*CartCreatePayload, error)

	// CartBuyerIdentityUpdate attaches a delivery address to an existing
	// cart so delivery options get computed
	CartBuyerIdentityUpdate(ctx context.Context, cartID string, buyer *BuyerIdentityInput, countryCode string) (*CartBuyerIdentityUpdatePayload, error)

	// GetVariant fetches a product variant localized to the buyer country.
	// A nil node means the variant does not exist
	GetVariant(ctx context.Context, variantGID, countryCode string) (*VariantNode, error)

	// GetShop fetches shop-level configuration
	GetShop(ctx context.Context) (*ShopInfo, error)
}

// ============================================================================
// API Request/Response Types (match Storefront GraphQL API 2024-01 structure)
// ============================================================================

// MoneyV2 is the GraphQL money object. Amounts arrive as JSON strings.
type MoneyV2 struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// UserError is a mutation-level validation error.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// CartLineInput is one line item for cartCreate.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// DeliveryAddress is the address attached via buyer identity.
type DeliveryAddress struct {
	Country  string `json:"country"`
	Province string `json:"province,omitempty"`
	Zip      string `json:"zip,omitempty"`
}

// DeliveryAddressPreference wraps a delivery address preference entry.
type DeliveryAddressPreference struct {
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
}

// BuyerIdentityInput identifies the buyer for localization and delivery.
type BuyerIdentityInput struct {
	CountryCode                string                      `json:"countryCode"`
	DeliveryAddressPreferences []DeliveryAddressPreference `json:"deliveryAddressPreferences,omitempty"`
}

// CartInput is the input object for the cartCreate mutation.
type CartInput struct {
	Lines         []CartLineInput    `json:"lines"`
	BuyerIdentity BuyerIdentityInput `json:"buyerIdentity"`
}

// CartCost is the cart-level cost breakdown. Tax and duty are null until
// the platform can compute them for the destination.
type CartCost struct {
	TotalAmount     MoneyV2  `json:"totalAmount"`
	SubtotalAmount  MoneyV2  `json:"subtotalAmount"`
	TotalTaxAmount  *MoneyV2 `json:"totalTaxAmount"`
	TotalDutyAmount *MoneyV2 `json:"totalDutyAmount"`
}

// DeliveryOption is one computed delivery choice.
type DeliveryOption struct {
	Handle             string  `json:"handle"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	DeliveryMethodType string  `json:"deliveryMethodType"`
	EstimatedCost      MoneyV2 `json:"estimatedCost"`
}

// DeliveryGroup holds the delivery options for one group of lines.
type DeliveryGroup struct {
	DeliveryOptions []DeliveryOption `json:"deliveryOptions"`
}

// DeliveryGroupEdge wraps a delivery group in connection form.
type DeliveryGroupEdge struct {
	Node DeliveryGroup `json:"node"`
}

// DeliveryGroupConnection is the paginated deliveryGroups field.
type DeliveryGroupConnection struct {
	Edges []DeliveryGroupEdge `json:"edges"`
}

// Cart is the cart object returned by mutations.
type Cart struct {
	ID             string                  `json:"id"`
	CheckoutURL    string                  `json:"checkoutUrl"`
	Cost           CartCost                `json:"cost"`
	DeliveryGroups DeliveryGroupConnection `json:"deliveryGroups"`
}

// CartCreatePayload is the cartCreate mutation payload.
type CartCreatePayload struct {
	Cart       *Cart       `json:"cart"`
	UserErrors []UserError `json:"userErrors"`
}

// CartBuyerIdentityUpdatePayload is the cartBuyerIdentityUpdate mutation payload.
type CartBuyerIdentityUpdatePayload struct {
	Cart       *Cart       `json:"cart"`
	UserErrors []UserError `json:"userErrors"`
}

// Product is the parent product of a variant.
type Product struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

// VariantNode is a product variant with country-localized pricing.
type VariantNode struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Price            MoneyV2  `json:"price"`
	CompareAtPrice   *MoneyV2 `json:"compareAtPrice"`
	AvailableForSale bool     `json:"availableForSale"`
	Product          Product  `json:"product"`
}

// ShopInfo is shop-level configuration from the shop query.
type ShopInfo struct {
	Name                         string
	Domain                       string
	EnabledPresentmentCurrencies []string
	ShipsToCountries             []string
}

// APIError represents an error from the Storefront API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
