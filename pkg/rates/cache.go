// Package rates provides the exchange-rate table cache and currency
// conversion used to normalize quote amounts into a requested currency.
package rates

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Table is a snapshot of exchange rates anchored to one base currency.
// Rates are multipliers relative to Base; Rates[Base] is always 1.
type Table struct {
	Base      string
	Rates     map[string]decimal.Decimal
	FetchedAt time.Time
}

// Has reports whether the table carries a rate for the given currency.
func (t Table) Has(currency string) bool {
	_, ok := t.Rates[currency]
	return ok
}

// FetchObserver receives the outcome of each rate refresh attempt. Satisfied
// by *telemetry.Metrics.
type FetchObserver interface {
	RecordRateFetch(outcome string)
}

type nopFetchObserver struct{}

func (nopFetchObserver) RecordRateFetch(string) {}

// Cache holds one rate table slot with a TTL. It degrades rather than fails:
// a refresh failure serves the prior table if one exists, or the bundled
// fallback table otherwise. Get never returns an error.
type Cache struct {
	apiClient APIClient
	ttl       time.Duration
	observer  FetchObserver
	logger    *otelzap.Logger

	mu    sync.Mutex
	table *Table
}

// CacheConfig holds cache configuration.
type CacheConfig struct {
	TTL time.Duration

	// Observer is notified of refresh outcomes. Optional.
	Observer FetchObserver
}

// NewCache creates a rate cache backed by the given API client.
func NewCache(cfg CacheConfig, apiClient APIClient, logger *otelzap.Logger) *Cache {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	observer := cfg.Observer
	if observer == nil {
		observer = nopFetchObserver{}
	}
	return &Cache{
		apiClient: apiClient,
		ttl:       ttl,
		observer:  observer,
		logger:    logger,
	}
}

// Get returns the active rate table for base. Within the TTL the cached
// table is returned without a network call. On expiry a refresh is
// attempted; concurrent callers may race to refresh, and the last write
// wins. Refresh failures never propagate.
func (c *Cache) Get(ctx context.Context, base string) Table {
	c.mu.Lock()
	current := c.table
	c.mu.Unlock()

	if current != nil && current.Base == base && time.Since(current.FetchedAt) < c.ttl {
		return *current
	}

	fetched, err := c.fetch(ctx, base)
	if err == nil {
		c.observer.RecordRateFetch("success")
		c.mu.Lock()
		c.table = fetched
		c.mu.Unlock()
		return *fetched
	}

	c.logger.Error("Rate refresh failed",
		zap.String("base", base),
		zap.Error(err),
	)

	// A previously fetched table is preferred over the bundled constants.
	// Staleness is visible only through FetchedAt.
	if current != nil && current.Base == base {
		c.observer.RecordRateFetch("stale")
		c.logger.Warn("Serving stale exchange rates",
			zap.String("base", base),
			zap.Time("fetched_at", current.FetchedAt),
		)
		return *current
	}

	fallback := &Table{
		Base:      base,
		Rates:     fallbackTable(base),
		FetchedAt: time.Now(),
	}
	c.observer.RecordRateFetch("fallback")
	c.logger.Warn("Serving bundled fallback exchange rates", zap.String("base", base))

	c.mu.Lock()
	c.table = fallback
	c.mu.Unlock()
	return *fallback
}

// Invalidate drops the cached table so the next Get refreshes. Intended for
// tests and operator endpoints.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.table = nil
	c.mu.Unlock()
}

// fetch retrieves and validates a fresh table. Transport errors, non-success
// payloads and empty rate maps all collapse into one failure outcome.
func (c *Cache) fetch(ctx context.Context, base string) (*Table, error) {
	resp, err := c.apiClient.Latest(ctx, base)
	if err != nil {
		return nil, err
	}
	if len(resp.ConversionRates) == 0 {
		return nil, &APIError{Code: "EMPTY_RATES", Message: "response payload missing rate map"}
	}

	// A zero or negative multiplier cannot be converted through; drop the
	// entry so conversions involving it fail as unsupported.
	rates := make(map[string]decimal.Decimal, len(resp.ConversionRates)+1)
	for code, r := range resp.ConversionRates {
		if r.Sign() <= 0 {
			c.logger.Warn("Dropping non-positive exchange rate",
				zap.String("currency", code),
				zap.String("rate", r.String()),
			)
			continue
		}
		rates[code] = r
	}
	if len(rates) == 0 {
		return nil, &APIError{Code: "EMPTY_RATES", Message: "response payload carried no usable rates"}
	}
	rates[base] = decimal.NewFromInt(1)

	c.logger.Info("Fetched fresh exchange rates",
		zap.String("base", base),
		zap.Int("count", len(rates)),
	)

	return &Table{
		Base:      base,
		Rates:     rates,
		FetchedAt: time.Now(),
	}, nil
}
