package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// Provenance identifies which provider tier produced a quote.
type Provenance string

const (
	ProvenanceCartAPI         Provenance = "cart_api"
	ProvenanceZoneAPIFallback Provenance = "zone_api_fallback"
)

// Accuracy is the caller-facing confidence indicator for a quote.
type Accuracy string

const (
	AccuracyExact       Accuracy = "exact"
	AccuracyApproximate Accuracy = "approximate"
	AccuracyFallback    Accuracy = "fallback"
)

// Money represents a monetary amount.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// Location identifies the buyer's destination.
type Location struct {
	CountryCode string // ISO 3166-1 alpha-2, or full country name on input
	Province    string
	PostalCode  string
}

// ShippingOption is one delivery choice offered for a quote.
type ShippingOption struct {
	ID          string
	Name        string
	Description string
	MethodType  string
	Price       Money
	SourceZone  string // set only for zone-derived options
	Converted   bool   // true when Price was re-denominated from its native currency
}

// VariantDetails describes the purchasable variant being quoted, localized
// to the buyer's country.
type VariantDetails struct {
	ID               string
	Title            string
	Price            Money
	CompareAtPrice   *Money
	AvailableForSale bool
	Converted        bool
}

// Request is the input to ResolveQuote.
type Request struct {
	VariantID string
	Location  Location
	Quantity  int
	Currency  string // optional; defaults to the country's expected currency
}

// QuoteResult is the normalized quote assembled by the resolver. All Money
// fields share one currency once resolution completes.
type QuoteResult struct {
	RequestID string
	Country   string
	VariantID string

	Variant *VariantDetails
	Options []ShippingOption

	Subtotal Money
	Shipping Money // price of the selected (first) option
	Tax      Money
	Duties   Money
	Total    Money

	Currency   string
	Provenance Provenance
	Accuracy   Accuracy

	CheckoutURL string // set only for cart-derived quotes
	Timestamp   time.Time
}

// ============================================================================
// Provider contracts
// ============================================================================

// EstimateRequest is the resolved location/variant input handed to the
// primary provider after validation and defaulting.
type EstimateRequest struct {
	VariantID   string
	CountryCode string
	Province    string
	PostalCode  string
	Quantity    int
}

// CartEstimate is the primary provider's computed shipping estimate, in the
// store's native currencies. The resolver owns reshaping it into a
// QuoteResult.
type CartEstimate struct {
	CartID      string
	CheckoutURL string
	Options     []ShippingOption
	Subtotal    Money
	Tax         Money
	Duties      Money
	Total       Money
}
