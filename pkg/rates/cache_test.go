package rates_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipquote/pkg/rates"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestCache(mock *rates.MockAPIClient, ttl time.Duration) *rates.Cache {
	logger := otelzap.New(zap.NewNop())
	return rates.NewCache(rates.CacheConfig{TTL: ttl}, mock, logger)
}

func TestCache_FirstCallFetches(t *testing.T) {
	mock := rates.NewMockAPIClient()
	cache := newTestCache(mock, time.Hour)

	table := cache.Get(context.Background(), "USD")

	assert.Equal(t, 1, mock.CallCount)
	assert.Equal(t, "USD", table.Base)
	require.True(t, table.Has("USD"))
	assert.True(t, decimal.NewFromInt(1).Equal(table.Rates["USD"]))
	assert.WithinDuration(t, time.Now(), table.FetchedAt, time.Second)
}

func TestCache_FreshWithinTTL(t *testing.T) {
	mock := rates.NewMockAPIClient()
	cache := newTestCache(mock, time.Hour)

	first := cache.Get(context.Background(), "USD")
	second := cache.Get(context.Background(), "USD")

	assert.Equal(t, 1, mock.CallCount, "second call must be served from cache")
	assert.Equal(t, first.FetchedAt, second.FetchedAt)
}

func TestCache_FailureNoPriorTable_UsesFallback(t *testing.T) {
	mock := rates.NewMockAPIClient()
	mock.SimulateErrors = true
	cache := newTestCache(mock, time.Hour)

	table := cache.Get(context.Background(), "USD")

	assert.Equal(t, "USD", table.Base)
	require.True(t, table.Has("USD"))
	assert.True(t, decimal.NewFromInt(1).Equal(table.Rates["USD"]))
	assert.True(t, table.Has("EUR"), "bundled table carries majors")
}

func TestCache_FailureNoPriorTable_RebasedFallback(t *testing.T) {
	mock := rates.NewMockAPIClient()
	mock.SimulateErrors = true
	cache := newTestCache(mock, time.Hour)

	table := cache.Get(context.Background(), "EUR")

	assert.Equal(t, "EUR", table.Base)
	require.True(t, table.Has("EUR"))
	assert.True(t, decimal.NewFromInt(1).Equal(table.Rates["EUR"]))
	// USD relative to EUR must be 1/0.8541, i.e. above parity.
	assert.True(t, table.Rates["USD"].GreaterThan(decimal.NewFromInt(1)))
}

func TestCache_FailureWithPriorTable_ServesStale(t *testing.T) {
	mock := rates.NewMockAPIClient()
	cache := newTestCache(mock, time.Nanosecond) // every call expires

	first := cache.Get(context.Background(), "USD")
	require.Equal(t, 1, mock.CallCount)

	mock.SimulateErrors = true
	time.Sleep(time.Millisecond)
	stale := cache.Get(context.Background(), "USD")

	assert.Equal(t, 2, mock.CallCount, "expiry must attempt a refresh")
	assert.Equal(t, first.FetchedAt, stale.FetchedAt, "stale table served unchanged")
	assert.True(t, stale.Has("EUR"))
}

func TestCache_Invalidate(t *testing.T) {
	mock := rates.NewMockAPIClient()
	cache := newTestCache(mock, time.Hour)

	cache.Get(context.Background(), "USD")
	cache.Invalidate()
	cache.Get(context.Background(), "USD")

	assert.Equal(t, 2, mock.CallCount)
}

func TestCache_EmptyRateMapIsFailure(t *testing.T) {
	mock := rates.NewMockAPIClient()
	mock.OnLatest = func(ctx context.Context, base string) (*rates.LatestResponse, error) {
		return &rates.LatestResponse{Result: "success", BaseCode: base}, nil
	}
	cache := newTestCache(mock, time.Hour)

	table := cache.Get(context.Background(), "USD")

	// Degrades to the bundled table rather than erroring.
	require.True(t, table.Has("USD"))
	assert.True(t, decimal.NewFromInt(1).Equal(table.Rates["USD"]))
}

func TestCache_BaseInvariantAlwaysHolds(t *testing.T) {
	mock := rates.NewMockAPIClient()
	mock.OnLatest = func(ctx context.Context, base string) (*rates.LatestResponse, error) {
		// Provider omits the base from its own map.
		return &rates.LatestResponse{
			Result:   "success",
			BaseCode: base,
			ConversionRates: map[string]decimal.Decimal{
				"EUR": decimal.RequireFromString("0.85"),
			},
		}, nil
	}
	cache := newTestCache(mock, time.Hour)

	table := cache.Get(context.Background(), "USD")

	require.True(t, table.Has("USD"))
	assert.True(t, decimal.NewFromInt(1).Equal(table.Rates["USD"]))
}

type stubFetchObserver struct {
	Outcomes []string
}

func (s *stubFetchObserver) RecordRateFetch(outcome string) {
	s.Outcomes = append(s.Outcomes, outcome)
}

func TestCache_RecordsFetchOutcomes(t *testing.T) {
	mock := rates.NewMockAPIClient()
	observer := &stubFetchObserver{}
	logger := otelzap.New(zap.NewNop())
	cache := rates.NewCache(rates.CacheConfig{
		TTL:      time.Nanosecond,
		Observer: observer,
	}, mock, logger)

	cache.Get(context.Background(), "USD")
	mock.SimulateErrors = true
	cache.Get(context.Background(), "USD")
	cache.Invalidate()
	cache.Get(context.Background(), "USD")

	assert.Equal(t, []string{"success", "stale", "fallback"}, observer.Outcomes)
}

func TestCache_FreshHitRecordsNothing(t *testing.T) {
	mock := rates.NewMockAPIClient()
	observer := &stubFetchObserver{}
	logger := otelzap.New(zap.NewNop())
	cache := rates.NewCache(rates.CacheConfig{
		TTL:      time.Hour,
		Observer: observer,
	}, mock, logger)

	cache.Get(context.Background(), "USD")
	cache.Get(context.Background(), "USD")

	assert.Equal(t, []string{"success"}, observer.Outcomes)
}

func TestCache_DropsNonPositiveRates(t *testing.T) {
	mock := rates.NewMockAPIClient()
	mock.OnLatest = func(ctx context.Context, base string) (*rates.LatestResponse, error) {
		return &rates.LatestResponse{
			Result:   "success",
			BaseCode: base,
			ConversionRates: map[string]decimal.Decimal{
				"EUR": decimal.RequireFromString("0.85"),
				"BAD": decimal.Zero,
				"NEG": decimal.RequireFromString("-1"),
			},
		}, nil
	}
	cache := newTestCache(mock, time.Hour)

	table := cache.Get(context.Background(), "USD")

	assert.True(t, table.Has("EUR"))
	assert.False(t, table.Has("BAD"))
	assert.False(t, table.Has("NEG"))
	assert.True(t, decimal.NewFromInt(1).Equal(table.Rates["USD"]))
}
