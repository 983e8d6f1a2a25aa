// Package quote provides the shipping quote resolution pipeline: provider
// contracts, the normalized quote model, and the orchestrating resolver.
package quote

import (
	"context"
)

// PrimaryProvider computes live shipping estimates through the commerce
// platform's cart API. Implementations are stateless request/response
// adapters.
type PrimaryProvider interface {
	// Name returns the provider identifier (e.g., "storefront").
	Name() string

	// GetEstimate creates an ephemeral cart for the variant, attaches the
	// buyer location, and reads back computed delivery options and totals.
	GetEstimate(ctx context.Context, req *EstimateRequest) (*CartEstimate, error)

	// GetVariant fetches localized variant details.
	GetVariant(ctx context.Context, variantID, countryCode string) (*VariantDetails, error)
}

// SecondaryProvider recovers statically configured zone rates through the
// platform's admin API when the primary path is unavailable.
type SecondaryProvider interface {
	// Name returns the provider identifier (e.g., "adminzones").
	Name() string

	// GetZoneRates returns the configured rates of every zone whose country
	// membership includes countryCode. An empty result is not an error.
	GetZoneRates(ctx context.Context, countryCode string) ([]ShippingOption, error)
}
