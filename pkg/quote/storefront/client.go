// Package storefront implements the primary quote provider on top of the
// commerce platform's Storefront Cart API.
package storefront

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tournevent/shipquote/pkg/quote"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "storefront"

const variantGIDPrefix = "gid://shopify/ProductVariant/"

// Config holds Storefront API configuration.
type Config struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
	UseMock     bool // When true, uses mock API client
}

// Client is the Storefront quote provider.
// It implements the quote.PrimaryProvider interface and delegates
// API calls to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Storefront client.
// If cfg.UseMock is true, it uses a mock API client for testing.
// Otherwise, it uses the real HTTP API client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			ShopDomain:  cfg.ShopDomain,
			AccessToken: cfg.AccessToken,
			APIVersion:  cfg.APIVersion,
			Timeout:     15 * time.Second,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new Storefront client with a custom API client.
// This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return providerName
}

// GetEstimate computes a shipping estimate through an ephemeral cart:
// cartCreate with the variant line, then cartBuyerIdentityUpdate with the
// destination address to make the platform compute delivery options.
func (c *Client) GetEstimate(ctx context.Context, req *quote.EstimateRequest) (*quote.CartEstimate, error) {
	c.logger.Info("Getting cart estimate",
		zap.String("variant_id", req.VariantID),
		zap.String("country", req.CountryCode),
		zap.Int("quantity", req.Quantity),
	)

	input := &CartInput{
		Lines: []CartLineInput{
			{MerchandiseID: normalizeVariantGID(req.VariantID), Quantity: req.Quantity},
		},
		BuyerIdentity: BuyerIdentityInput{CountryCode: req.CountryCode},
	}

	created, err := c.apiClient.CartCreate(ctx, input, req.CountryCode)
	if err != nil {
		c.logger.Error("Storefront API error", zap.Error(err))
		return nil, err
	}
	if len(created.UserErrors) > 0 {
		return nil, quote.NewQuoteError(providerName, "CART_CREATE", joinUserErrors(created.UserErrors))
	}
	if created.Cart == nil {
		return nil, quote.NewQuoteError(providerName, "CART_CREATE", "cartCreate returned no cart")
	}

	buyer := &BuyerIdentityInput{
		CountryCode: req.CountryCode,
		DeliveryAddressPreferences: []DeliveryAddressPreference{
			{DeliveryAddress: DeliveryAddress{
				Country:  req.CountryCode,
				Province: req.Province,
				Zip:      req.PostalCode,
			}},
		},
	}

	updated, err := c.apiClient.CartBuyerIdentityUpdate(ctx, created.Cart.ID, buyer, req.CountryCode)
	if err != nil {
		c.logger.Error("Storefront API error", zap.Error(err))
		return nil, err
	}
	if len(updated.UserErrors) > 0 {
		return nil, quote.NewQuoteError(providerName, "CART_UPDATE", joinUserErrors(updated.UserErrors))
	}
	if updated.Cart == nil {
		return nil, quote.NewQuoteError(providerName, "CART_UPDATE", "cartBuyerIdentityUpdate returned no cart")
	}

	return cartToEstimate(updated.Cart), nil
}

// GetVariant fetches localized variant details.
func (c *Client) GetVariant(ctx context.Context, variantID, countryCode string) (*quote.VariantDetails, error) {
	node, err := c.apiClient.GetVariant(ctx, normalizeVariantGID(variantID), countryCode)
	if err != nil {
		c.logger.Error("Storefront API error", zap.Error(err))
		return nil, err
	}
	if node == nil || node.ID == "" {
		return nil, quote.NewQuoteError(providerName, "VARIANT_NOT_FOUND", "product variant not found").WithStatusCode(404)
	}

	details := &quote.VariantDetails{
		ID:               node.ID,
		Title:            node.Title,
		Price:            moneyToQuote(node.Price),
		AvailableForSale: node.AvailableForSale,
	}
	if node.CompareAtPrice != nil {
		m := moneyToQuote(*node.CompareAtPrice)
		details.CompareAtPrice = &m
	}
	return details, nil
}

// GetShopInfo fetches shop-level configuration.
func (c *Client) GetShopInfo(ctx context.Context) (*ShopInfo, error) {
	return c.apiClient.GetShop(ctx)
}

// ============================================================================
// Conversion helpers: API models -> Quote models
// ============================================================================

func cartToEstimate(cart *Cart) *quote.CartEstimate {
	var options []quote.ShippingOption
	for _, edge := range cart.DeliveryGroups.Edges {
		for _, opt := range edge.Node.DeliveryOptions {
			options = append(options, quote.ShippingOption{
				ID:          opt.Handle,
				Name:        opt.Title,
				Description: opt.Description,
				MethodType:  opt.DeliveryMethodType,
				Price:       moneyToQuote(opt.EstimatedCost),
			})
		}
	}

	currency := cart.Cost.TotalAmount.CurrencyCode
	return &quote.CartEstimate{
		CartID:      cart.ID,
		CheckoutURL: cart.CheckoutURL,
		Options:     options,
		Subtotal:    moneyToQuote(cart.Cost.SubtotalAmount),
		Tax:         optionalMoneyToQuote(cart.Cost.TotalTaxAmount, currency),
		Duties:      optionalMoneyToQuote(cart.Cost.TotalDutyAmount, currency),
		Total:       moneyToQuote(cart.Cost.TotalAmount),
	}
}

func moneyToQuote(m MoneyV2) quote.Money {
	return quote.Money{Amount: m.Amount, Currency: m.CurrencyCode}
}

func optionalMoneyToQuote(m *MoneyV2, currency string) quote.Money {
	if m == nil {
		return quote.Money{Amount: decimal.Zero, Currency: currency}
	}
	return moneyToQuote(*m)
}

func normalizeVariantGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return variantGIDPrefix + id
}

func joinUserErrors(errs []UserError) string {
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message
	}
	return strings.Join(messages, ", ")
}

// Ensure Client implements the provider interface
var _ quote.PrimaryProvider = (*Client)(nil)
