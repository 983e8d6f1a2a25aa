package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/tournevent/shipquote/internal/config"
	"github.com/tournevent/shipquote/internal/telemetry"
	"github.com/tournevent/shipquote/pkg/quote"
	"github.com/tournevent/shipquote/pkg/quote/adminzones"
	"github.com/tournevent/shipquote/pkg/rates"
	"github.com/tournevent/shipquote/pkg/refdata"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// QuoteResolver is the quote pipeline surface the server depends on.
// Satisfied by *quote.Resolver.
type QuoteResolver interface {
	ResolveQuote(ctx context.Context, req *quote.Request) (*quote.QuoteResult, error)
	RateTable(ctx context.Context) rates.Table
}

// ShopInfoSource supplies shop-level configuration. Satisfied by
// *adminzones.Client.
type ShopInfoSource interface {
	GetShopInfo(ctx context.Context) (*adminzones.ShopInfo, error)
}

// Server is the HTTP server for the shipping quote service.
type Server struct {
	port     int
	cfg      *config.Config
	resolver QuoteResolver
	shopInfo ShopInfoSource
	logger   *otelzap.Logger
	metrics  *telemetry.Metrics
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance. The metrics instance is shared with the
// quote pipeline so that one registration covers the whole process.
func New(cfg Config, appCfg *config.Config, resolver QuoteResolver, shopInfo ShopInfoSource, logger *otelzap.Logger, metrics *telemetry.Metrics) *Server {
	return &Server{
		port:     cfg.Port,
		cfg:      appCfg,
		resolver: resolver,
		shopInfo: shopInfo,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Handler builds the route mux. Split out from Run for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/shipping-rates", s.handleShippingRates)
	mux.HandleFunc("/rates-table", s.handleRatesTable)
	mux.HandleFunc("/shop-config", s.handleShopConfig)

	return mux
}

// ============================================================================
// Request/response types
// ============================================================================

type shippingRatesRequest struct {
	Country   string `json:"country"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
	ZipCode   string `json:"zipCode"`
	Province  string `json:"province"`
	Currency  string `json:"currency"`
}

type moneyDTO struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type shippingRateDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MethodType  string   `json:"methodType,omitempty"`
	Price       moneyDTO `json:"price"`
	Zone        string   `json:"zone,omitempty"`
	Converted   bool     `json:"converted,omitempty"`
}

type variantDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Price            moneyDTO  `json:"price"`
	CompareAtPrice   *moneyDTO `json:"compareAtPrice,omitempty"`
	AvailableForSale bool      `json:"availableForSale"`
	Converted        bool      `json:"converted,omitempty"`
}

type pricingBreakdownDTO struct {
	Subtotal moneyDTO `json:"subtotal"`
	Shipping moneyDTO `json:"shipping"`
	Taxes    moneyDTO `json:"taxes"`
	Duties   moneyDTO `json:"duties"`
	Total    moneyDTO `json:"total"`
	Currency string   `json:"currency"`
}

type shippingRatesResponse struct {
	Success          bool                `json:"success"`
	RequestID        string              `json:"requestId"`
	Country          string              `json:"country"`
	VariantID        string              `json:"variantId"`
	Variant          *variantDTO         `json:"variant,omitempty"`
	ShippingRates    []shippingRateDTO   `json:"shippingRates"`
	PricingBreakdown pricingBreakdownDTO `json:"pricingBreakdown"`
	Currency         string              `json:"currency"`
	EstimateAccuracy string              `json:"estimateAccuracy"`
	Method           string              `json:"method"`
	CheckoutURL      string              `json:"checkoutUrl,omitempty"`
	Note             string              `json:"note"`
	Timestamp        time.Time           `json:"timestamp"`
}

type errorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// ============================================================================
// Handlers
// ============================================================================

func (s *Server) handleShippingRates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		s.writeError(w, "shipping-rates", http.StatusMethodNotAllowed, "Method not allowed, use POST", nil)
		return
	}

	var req shippingRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "shipping-rates", http.StatusBadRequest, "Invalid JSON: "+err.Error(), nil)
		return
	}

	result, err := s.resolver.ResolveQuote(r.Context(), &quote.Request{
		VariantID: req.VariantID,
		Location: quote.Location{
			CountryCode: req.Country,
			Province:    req.Province,
			PostalCode:  req.ZipCode,
		},
		Quantity: req.Quantity,
		Currency: req.Currency,
	})
	if err != nil {
		status := http.StatusInternalServerError
		message := "Unable to calculate shipping"
		var details interface{}

		switch {
		case errors.Is(err, quote.ErrInvalidInput):
			status = http.StatusBadRequest
			message = err.Error()
			details = map[string]interface{}{
				"examples": map[string]interface{}{
					"valid_iso_codes": []string{"US", "CA", "GB", "AU", "IN"},
					"valid_names":     []string{"United States", "Canada", "United Kingdom", "Australia", "India"},
				},
			}
		case errors.Is(err, quote.ErrVariantUnavailable):
			status = http.StatusBadRequest
			message = "Product variant is not available for sale"
		case errors.Is(err, rates.ErrUnsupportedCurrency):
			status = http.StatusBadRequest
			message = err.Error()
		default:
			details = map[string]interface{}{
				"suggestion": "Please try again or contact support",
			}
		}

		s.logger.Warn("Shipping rates request failed",
			zap.Int("status", status),
			zap.Error(err),
		)
		s.writeError(w, "shipping-rates", status, message, details)
		return
	}

	s.metrics.RecordQuote(string(result.Provenance), string(result.Accuracy))
	s.metrics.RecordRequest("shipping-rates", "200", time.Since(start).Seconds())

	json.NewEncoder(w).Encode(quoteToResponse(result, noteFor(r, result, req.ZipCode != "")))
}

func (s *Server) handleRatesTable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeError(w, "rates-table", http.StatusMethodNotAllowed, "Method not allowed, use GET", nil)
		return
	}

	table := s.resolver.RateTable(r.Context())

	s.metrics.RecordRequest("rates-table", "200", time.Since(start).Seconds())
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"base":      table.Base,
		"rates":     table.Rates,
		"fetchedAt": table.FetchedAt,
	})
}

func (s *Server) handleShopConfig(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeError(w, "shop-config", http.StatusMethodNotAllowed, "Method not allowed, use GET", nil)
		return
	}

	shop := map[string]interface{}{
		"name":              "Unknown Store",
		"baseCurrency":      s.cfg.BaseCurrency,
		"shippingCountries": refdata.CountryCodes(),
		"enabledCurrencies": []string{s.cfg.BaseCurrency},
	}

	if s.shopInfo != nil {
		info, err := s.shopInfo.GetShopInfo(r.Context())
		if err != nil {
			// Static defaults stand in when the upstream is unreachable.
			s.logger.Warn("Failed to fetch shop data", zap.Error(err))
		} else {
			shop = map[string]interface{}{
				"name":              info.Name,
				"baseCurrency":      info.CurrencyCode,
				"shippingCountries": info.ShipsToCountries,
				"enabledCurrencies": info.EnabledPresentmentCurrencies,
			}
		}
	}

	s.metrics.RecordRequest("shop-config", "200", time.Since(start).Seconds())
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":            true,
		"shop":               shop,
		"availableCountries": refdata.Countries(),
		"timestamp":          time.Now().UTC(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	missing := s.cfg.MissingCredentials()
	status := "healthy"
	if len(missing) > 0 {
		status = "configuration_needed"
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":                      status,
		"version":                     s.cfg.Version,
		"timestamp":                   time.Now().UTC(),
		"missingEnvironmentVariables": missing,
	})
}

func (s *Server) writeError(w http.ResponseWriter, endpoint string, status int, message string, details interface{}) {
	s.metrics.RecordRequest(endpoint, strconv.Itoa(status), 0)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// ============================================================================
// Response assembly
// ============================================================================

func quoteToResponse(result *quote.QuoteResult, note string) shippingRatesResponse {
	options := make([]shippingRateDTO, len(result.Options))
	for i, opt := range result.Options {
		options[i] = shippingRateDTO{
			ID:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			MethodType:  opt.MethodType,
			Price:       moneyToDTO(opt.Price),
			Zone:        opt.SourceZone,
			Converted:   opt.Converted,
		}
	}

	var variant *variantDTO
	if result.Variant != nil {
		variant = &variantDTO{
			ID:               result.Variant.ID,
			Title:            result.Variant.Title,
			Price:            moneyToDTO(result.Variant.Price),
			AvailableForSale: result.Variant.AvailableForSale,
			Converted:        result.Variant.Converted,
		}
		if result.Variant.CompareAtPrice != nil {
			cmp := moneyToDTO(*result.Variant.CompareAtPrice)
			variant.CompareAtPrice = &cmp
		}
	}

	return shippingRatesResponse{
		Success:       true,
		RequestID:     result.RequestID,
		Country:       result.Country,
		VariantID:     result.VariantID,
		Variant:       variant,
		ShippingRates: options,
		PricingBreakdown: pricingBreakdownDTO{
			Subtotal: moneyToDTO(result.Subtotal),
			Shipping: moneyToDTO(result.Shipping),
			Taxes:    moneyToDTO(result.Tax),
			Duties:   moneyToDTO(result.Duties),
			Total:    moneyToDTO(result.Total),
			Currency: result.Currency,
		},
		Currency:         result.Currency,
		EstimateAccuracy: string(result.Accuracy),
		Method:           string(result.Provenance),
		CheckoutURL:      result.CheckoutURL,
		Note:             note,
		Timestamp:        result.Timestamp,
	}
}

func moneyToDTO(m quote.Money) moneyDTO {
	return moneyDTO{Amount: m.Amount, Currency: m.Currency}
}

// ============================================================================
// Localized notes
// ============================================================================

type noteSet struct {
	zipNote        string
	defaultNoteFmt string
	fallbackNote   string
}

var notes = map[string]noteSet{
	"en": {
		zipNote:        "Rates based on provided location",
		defaultNoteFmt: "Rates based on %s default location",
		fallbackNote:   "Used configured zone rates - final rates may vary",
	},
	"fr": {
		zipNote:        "Tarifs basés sur l'emplacement fourni",
		defaultNoteFmt: "Tarifs basés sur l'emplacement par défaut de %s",
		fallbackNote:   "Tarifs de zone configurés utilisés - les tarifs finaux peuvent varier",
	},
	"es": {
		zipNote:        "Tarifas basadas en la ubicación proporcionada",
		defaultNoteFmt: "Tarifas basadas en la ubicación predeterminada de %s",
		fallbackNote:   "Se usaron tarifas de zona configuradas - las tarifas finales pueden variar",
	},
	"de": {
		zipNote:        "Preise basierend auf dem angegebenen Standort",
		defaultNoteFmt: "Preise basierend auf dem Standardstandort von %s",
		fallbackNote:   "Konfigurierte Zonentarife verwendet - Endpreise können abweichen",
	},
	"it": {
		zipNote:        "Tariffe basate sulla posizione fornita",
		defaultNoteFmt: "Tariffe basate sulla posizione predefinita di %s",
		fallbackNote:   "Tariffe di zona configurate utilizzate - le tariffe finali possono variare",
	},
	"nl": {
		zipNote:        "Tarieven gebaseerd op opgegeven locatie",
		defaultNoteFmt: "Tarieven gebaseerd op de standaardlocatie van %s",
		fallbackNote:   "Geconfigureerde zonetarieven gebruikt - definitieve tarieven kunnen afwijken",
	},
}

// noteFor builds the localized note from the Accept-Language header's first
// language tag.
func noteFor(r *http.Request, result *quote.QuoteResult, zipSupplied bool) string {
	lang := strings.ToLower(r.Header.Get("Accept-Language"))
	if i := strings.IndexAny(lang, ",-;"); i >= 0 {
		lang = lang[:i]
	}
	set, ok := notes[lang]
	if !ok {
		set = notes["en"]
	}

	if result.Provenance == quote.ProvenanceZoneAPIFallback {
		return set.fallbackNote
	}
	if zipSupplied {
		return set.zipNote
	}

	country := refdata.CountryName(result.Country)
	if country == "" {
		country = result.Country
	}
	return fmt.Sprintf(set.defaultNoteFmt, country)
}
