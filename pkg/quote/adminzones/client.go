// Package adminzones implements the secondary quote provider on top of the
// commerce platform's Admin delivery profile configuration. It serves
// statically configured zone rates when live cart estimates are unavailable.
package adminzones

import (
	"context"
	"time"

	"github.com/tournevent/shipquote/pkg/quote"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "adminzones"

// Config holds Admin API configuration.
type Config struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
	UseMock     bool // When true, uses mock API client
}

// Client is the zone-rate quote provider.
// It implements the quote.SecondaryProvider interface and delegates
// API calls to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new zone-rate client.
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

// NewWithAPIClient creates a new zone-rate client with a custom API client.
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

// GetZoneRates walks every delivery profile and collects the flat-rate
// methods of each zone whose country membership includes countryCode.
// Methods without a definition-based price are skipped. An empty result is
// not an error.
func (c *Client) GetZoneRates(ctx context.Context, countryCode string) ([]quote.ShippingOption, error) {
	c.logger.Info("Getting zone rates",
		zap.String("country", countryCode),
	)

	profiles, err := c.apiClient.GetDeliveryProfiles(ctx)
	if err != nil {
		c.logger.Error("Admin API error", zap.Error(err))
		return nil, err
	}

	var options []quote.ShippingOption
	for _, profileEdge := range profiles.Edges {
		for _, group := range profileEdge.Node.ProfileLocationGroups {
			for _, zoneEdge := range group.LocationGroupZones.Edges {
				zone := zoneEdge.Node.Zone
				if !zoneCoversCountry(zone, countryCode) {
					continue
				}
				for _, methodEdge := range zoneEdge.Node.MethodDefinitions.Edges {
					method := methodEdge.Node
					if method.RateProvider == nil || method.RateProvider.Price == nil {
						continue
					}
					options = append(options, quote.ShippingOption{
						ID:          method.ID,
						Name:        method.Name,
						Description: method.Description,
						Price: quote.Money{
							Amount:   method.RateProvider.Price.Amount,
							Currency: method.RateProvider.Price.CurrencyCode,
						},
						SourceZone: zone.Name,
					})
				}
			}
		}
	}

	c.logger.Info("Zone rates collected",
		zap.String("country", countryCode),
		zap.Int("options", len(options)),
	)
	return options, nil
}

// GetShopInfo fetches shop-level configuration.
func (c *Client) GetShopInfo(ctx context.Context) (*ShopInfo, error) {
	return c.apiClient.GetShop(ctx)
}

func zoneCoversCountry(zone Zone, countryCode string) bool {
	for _, country := range zone.Countries {
		if country.Code.CountryCode == countryCode {
			return true
		}
	}
	return false
}

// Ensure Client implements the provider interface
var _ quote.SecondaryProvider = (*Client)(nil)
