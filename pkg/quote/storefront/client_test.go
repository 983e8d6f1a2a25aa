package storefront_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipquote/pkg/quote"
	"github.com/tournevent/shipquote/pkg/quote/storefront"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestClient(mockClient *storefront.MockAPIClient) *storefront.Client {
	logger := otelzap.New(zap.NewNop())
	return storefront.NewWithAPIClient(
		storefront.Config{},
		mockClient,
		logger,
		nil,
	)
}

func TestClient_GetEstimate_Success(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	client := newTestClient(mockAPI)

	req := &quote.EstimateRequest{
		VariantID:   "12345",
		CountryCode: "US",
		PostalCode:  "10001",
		Quantity:    1,
	}

	ctx := context.Background()
	est, err := client.GetEstimate(ctx, req)

	require.NoError(t, err)
	assert.NotEmpty(t, est.CartID)
	assert.NotEmpty(t, est.CheckoutURL)
	assert.Len(t, est.Options, 2) // Mock returns 2 delivery options
	assert.Equal(t, "Standard Shipping", est.Options[0].Name)
	assert.Equal(t, "USD", est.Subtotal.Currency)
}

func TestClient_GetEstimate_APIError(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	mockAPI.SimulateErrors = true

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.GetEstimate(ctx, &quote.EstimateRequest{
		VariantID:   "12345",
		CountryCode: "US",
		Quantity:    1,
	})

	assert.Error(t, err)
}

func TestClient_GetEstimate_UserErrors(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	mockAPI.OnCartCreate = func(ctx context.Context, input *storefront.CartInput, countryCode string) (*storefront.CartCreatePayload, error) {
		return &storefront.CartCreatePayload{
			UserErrors: []storefront.UserError{
				{Field: []string{"lines"}, Message: "Merchandise is not published"},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	_, err := client.GetEstimate(context.Background(), &quote.EstimateRequest{
		VariantID:   "12345",
		CountryCode: "US",
		Quantity:    1,
	})

	require.Error(t, err)
	var qerr *quote.QuoteError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "CART_CREATE", qerr.Code)
	assert.Contains(t, qerr.Message, "Merchandise is not published")
}

func TestClient_GetEstimate_NormalizesVariantID(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	var gotMerchandiseID string
	mockAPI.OnCartCreate = func(ctx context.Context, input *storefront.CartInput, countryCode string) (*storefront.CartCreatePayload, error) {
		gotMerchandiseID = input.Lines[0].MerchandiseID
		return storefront.NewMockAPIClient().CartCreate(ctx, input, countryCode)
	}

	client := newTestClient(mockAPI)

	_, err := client.GetEstimate(context.Background(), &quote.EstimateRequest{
		VariantID:   "98765",
		CountryCode: "CA",
		Quantity:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/ProductVariant/98765", gotMerchandiseID)
}

func TestClient_GetEstimate_KeepsGIDVariantID(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	var gotMerchandiseID string
	mockAPI.OnCartCreate = func(ctx context.Context, input *storefront.CartInput, countryCode string) (*storefront.CartCreatePayload, error) {
		gotMerchandiseID = input.Lines[0].MerchandiseID
		return storefront.NewMockAPIClient().CartCreate(ctx, input, countryCode)
	}

	client := newTestClient(mockAPI)

	_, err := client.GetEstimate(context.Background(), &quote.EstimateRequest{
		VariantID:   "gid://shopify/ProductVariant/555",
		CountryCode: "CA",
		Quantity:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/ProductVariant/555", gotMerchandiseID)
}

func TestClient_GetEstimate_DeliveryAddress(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	var gotBuyer *storefront.BuyerIdentityInput
	mockAPI.OnCartBuyerIdentityUpdate = func(ctx context.Context, cartID string, buyer *storefront.BuyerIdentityInput, countryCode string) (*storefront.CartBuyerIdentityUpdatePayload, error) {
		gotBuyer = buyer
		return storefront.NewMockAPIClient().CartBuyerIdentityUpdate(ctx, cartID, buyer, countryCode)
	}

	client := newTestClient(mockAPI)

	_, err := client.GetEstimate(context.Background(), &quote.EstimateRequest{
		VariantID:   "12345",
		CountryCode: "CA",
		Province:    "ON",
		PostalCode:  "M5V 3L9",
		Quantity:    1,
	})

	require.NoError(t, err)
	require.NotNil(t, gotBuyer)
	require.Len(t, gotBuyer.DeliveryAddressPreferences, 1)
	addr := gotBuyer.DeliveryAddressPreferences[0].DeliveryAddress
	assert.Equal(t, "CA", addr.Country)
	assert.Equal(t, "ON", addr.Province)
	assert.Equal(t, "M5V 3L9", addr.Zip)
}

func TestClient_GetEstimate_MissingTaxDefaultsToZero(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	mockAPI.OnCartBuyerIdentityUpdate = func(ctx context.Context, cartID string, buyer *storefront.BuyerIdentityInput, countryCode string) (*storefront.CartBuyerIdentityUpdatePayload, error) {
		return &storefront.CartBuyerIdentityUpdatePayload{
			Cart: &storefront.Cart{
				ID:          cartID,
				CheckoutURL: "https://mock-store.myshopify.com/checkouts/abc",
				Cost: storefront.CartCost{
					TotalAmount:    storefront.MoneyV2{Amount: decimal.RequireFromString("35.98"), CurrencyCode: "USD"},
					SubtotalAmount: storefront.MoneyV2{Amount: decimal.RequireFromString("29.99"), CurrencyCode: "USD"},
				},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	est, err := client.GetEstimate(context.Background(), &quote.EstimateRequest{
		VariantID:   "12345",
		CountryCode: "US",
		Quantity:    1,
	})

	require.NoError(t, err)
	assert.True(t, est.Tax.Amount.IsZero())
	assert.Equal(t, "USD", est.Tax.Currency)
	assert.True(t, est.Duties.Amount.IsZero())
}

func TestClient_GetVariant_Success(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	client := newTestClient(mockAPI)

	variant, err := client.GetVariant(context.Background(), "12345", "US")

	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/ProductVariant/12345", variant.ID)
	assert.True(t, variant.AvailableForSale)
	assert.Equal(t, "USD", variant.Price.Currency)
}

func TestClient_GetVariant_NotFound(t *testing.T) {
	mockAPI := storefront.NewMockAPIClient()
	mockAPI.OnGetVariant = func(ctx context.Context, variantGID, countryCode string) (*storefront.VariantNode, error) {
		return nil, nil
	}

	client := newTestClient(mockAPI)

	_, err := client.GetVariant(context.Background(), "999", "US")

	require.Error(t, err)
	var qerr *quote.QuoteError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "VARIANT_NOT_FOUND", qerr.Code)
	assert.Equal(t, 404, qerr.StatusCode)
}

func TestClient_Name(t *testing.T) {
	client := newTestClient(storefront.NewMockAPIClient())
	assert.Equal(t, "storefront", client.Name())
}
