package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"80"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Shop
	ShopDomain            string `envconfig:"SHOPIFY_STORE_DOMAIN"`
	StorefrontAccessToken string `envconfig:"SHOPIFY_STOREFRONT_ACCESS_TOKEN"`
	AdminAccessToken      string `envconfig:"SHOPIFY_ACCESS_TOKEN"`
	APIVersion            string `envconfig:"SHOPIFY_API_VERSION" default:"2024-01"`
	StorefrontUseMock     bool   `envconfig:"STOREFRONT_USE_MOCK" default:"false"`
	AdminUseMock          bool   `envconfig:"ADMIN_USE_MOCK" default:"false"`

	// Exchange rates
	ExchangeRateAPIKey  string        `envconfig:"EXCHANGE_RATE_API_KEY"`
	ExchangeRateBaseURL string        `envconfig:"EXCHANGE_RATE_BASE_URL" default:"https://v6.exchangerate-api.com"`
	ExchangeRateUseMock bool          `envconfig:"EXCHANGE_RATE_USE_MOCK" default:"false"`
	BaseCurrency        string        `envconfig:"BASE_CURRENCY" default:"USD"`
	RatesTTL            time.Duration `envconfig:"RATES_TTL" default:"24h"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"true"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://jaeger-collector.claude.svc.cluster.local:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"shipquote"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// MissingCredentials lists the credential variables that are required for
// live upstream access but are not set. Mocked upstreams need none.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if !c.StorefrontUseMock || !c.AdminUseMock {
		if c.ShopDomain == "" {
			missing = append(missing, "SHOPIFY_STORE_DOMAIN")
		}
	}
	if !c.StorefrontUseMock && c.StorefrontAccessToken == "" {
		missing = append(missing, "SHOPIFY_STOREFRONT_ACCESS_TOKEN")
	}
	if !c.AdminUseMock && c.AdminAccessToken == "" {
		missing = append(missing, "SHOPIFY_ACCESS_TOKEN")
	}
	if !c.ExchangeRateUseMock && c.ExchangeRateAPIKey == "" {
		missing = append(missing, "EXCHANGE_RATE_API_KEY")
	}
	return missing
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("shop.domain", c.ShopDomain),
		attribute.String("rates.base_currency", c.BaseCurrency),
	}
}
