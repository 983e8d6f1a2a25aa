package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipquote/internal/config"
	"github.com/tournevent/shipquote/internal/server"
	"github.com/tournevent/shipquote/internal/telemetry"
	"github.com/tournevent/shipquote/pkg/quote"
	"github.com/tournevent/shipquote/pkg/quote/adminzones"
	"github.com/tournevent/shipquote/pkg/quote/storefront"
	"github.com/tournevent/shipquote/pkg/rates"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var (
	handlerOnce sync.Once
	testHandler http.Handler
)

// newTestHandler builds one fully mock-backed server shared by all tests.
// Prometheus metric registration is process-global, so constructing a second
// server would panic on duplicate collectors.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	handlerOnce.Do(func() {
		logger := otelzap.New(zap.NewNop())
		metrics := telemetry.NewMetrics()
		primary := storefront.New(storefront.Config{UseMock: true}, logger, nil)
		secondary := adminzones.New(adminzones.Config{UseMock: true}, logger, nil)
		rateCache := rates.NewCache(rates.CacheConfig{Observer: metrics}, rates.NewMockAPIClient(), logger)
		resolver := quote.NewResolver(quote.Config{BaseCurrency: "USD", Observer: metrics}, primary, secondary, rateCache, logger, nil)

		cfg := &config.Config{
			BaseCurrency:        "USD",
			StorefrontUseMock:   true,
			AdminUseMock:        true,
			ExchangeRateUseMock: true,
			Version:             "test",
		}

		srv := server.New(server.Config{Port: 8080}, cfg, resolver, secondary, logger, metrics)
		testHandler = srv.Handler()
	})
	return testHandler
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestServer_ShippingRates_Success(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "US", "variantId": "12345", "quantity": 1}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "US", resp["country"])
	assert.Equal(t, "cart_api", resp["method"])
	assert.Equal(t, "approximate", resp["estimateAccuracy"])

	options, ok := resp["shippingRates"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, options)

	breakdown, ok := resp["pricingBreakdown"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "USD", breakdown["currency"])
}

func TestServer_ShippingRates_ExactWithZip(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "US", "variantId": "12345", "zipCode": "90210"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "exact", resp["estimateAccuracy"])
	assert.Equal(t, "Rates based on provided location", resp["note"])
}

func TestServer_ShippingRates_DefaultLocationNote(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "CA", "variantId": "12345"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rates based on Canada default location", resp["note"])
}

func TestServer_ShippingRates_LocalizedNote(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "FR", "variantId": "12345", "zipCode": "75001"}`,
		map[string]string{"Accept-Language": "fr-FR,fr;q=0.9"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tarifs basés sur l'emplacement fourni", resp["note"])
}

func TestServer_ShippingRates_InvalidCountry(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "Atlantis", "variantId": "12345"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "Atlantis")
}

func TestServer_ShippingRates_MissingVariant(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "US"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, resp["success"])
}

func TestServer_ShippingRates_InvalidCurrency(t *testing.T) {
	handler := newTestHandler(t)

	rec, _ := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "US", "variantId": "12345", "currency": "ZZZ"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ShippingRates_CurrencyWithoutRate(t *testing.T) {
	handler := newTestHandler(t)

	// KES is a valid currency code but the mock rate table has no entry
	// for it.
	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "US", "variantId": "12345", "currency": "KES"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "unsupported currency")
	assert.Contains(t, resp["error"], "KES")
}

func TestServer_ShippingRates_LowercaseCurrency(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodPost, "/shipping-rates",
		`{"country": "US", "variantId": "12345", "currency": "eur"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EUR", resp["currency"])
}

func TestServer_ShippingRates_InvalidJSON(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/shipping-rates", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ShippingRates_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	rec, _ := doJSON(t, handler, http.MethodGet, "/shipping-rates", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_RatesTable(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodGet, "/rates-table", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "USD", resp["base"])

	ratesMap, ok := resp["rates"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, ratesMap, "EUR")
}

func TestServer_ShopConfig(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodGet, "/shop-config", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])

	shop, ok := resp["shop"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Mock Store", shop["name"])

	countries, ok := resp["availableCountries"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "United States", countries["US"])
}

func TestServer_Health(t *testing.T) {
	handler := newTestHandler(t)

	rec, resp := doJSON(t, handler, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	// All upstreams are mocked, so no credentials are required
	assert.Equal(t, "healthy", resp["status"])
}
