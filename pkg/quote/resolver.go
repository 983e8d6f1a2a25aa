package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tournevent/shipquote/pkg/rates"
	"github.com/tournevent/shipquote/pkg/refdata"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RateSource supplies the active exchange-rate table. Satisfied by
// *rates.Cache.
type RateSource interface {
	Get(ctx context.Context, base string) rates.Table
}

// Observer receives upstream provider failure notifications. Satisfied by
// *telemetry.Metrics.
type Observer interface {
	RecordProviderError(provider, errorType string)
}

type nopObserver struct{}

func (nopObserver) RecordProviderError(string, string) {}

// Resolver orchestrates the quote pipeline: validation, provider calls with
// fallback, and currency normalization. It owns a QuoteResult for the
// duration of one request and nothing longer.
type Resolver struct {
	config    Config
	primary   PrimaryProvider
	secondary SecondaryProvider
	rates     RateSource
	observer  Observer
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// Config holds resolver configuration.
type Config struct {
	// BaseCurrency is the store's native currency, used as the rate table
	// anchor.
	BaseCurrency string

	// Observer is notified of provider failures. Optional.
	Observer Observer
}

// NewResolver creates a resolver wired to both provider tiers and the rate
// cache.
func NewResolver(cfg Config, primary PrimaryProvider, secondary SecondaryProvider, rateSource RateSource, logger *otelzap.Logger, tracer trace.Tracer) *Resolver {
	if cfg.BaseCurrency == "" {
		cfg.BaseCurrency = "USD"
	}
	observer := cfg.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	return &Resolver{
		config:    cfg,
		primary:   primary,
		secondary: secondary,
		rates:     rateSource,
		observer:  observer,
		logger:    logger,
		tracer:    tracer,
	}
}

// RateTable exposes the active exchange-rate table for diagnostics.
func (r *Resolver) RateTable(ctx context.Context) rates.Table {
	return r.rates.Get(ctx, r.config.BaseCurrency)
}

// ResolveQuote runs the full pipeline for one request. After validation the
// only failures a caller can see are ErrVariantUnavailable,
// rates.ErrUnsupportedCurrency, and ErrQuoteUnavailable.
func (r *Resolver) ResolveQuote(ctx context.Context, req *Request) (*QuoteResult, error) {
	if r.tracer != nil {
		var span trace.Span
		ctx, span = r.tracer.Start(ctx, "quote.ResolveQuote")
		defer span.End()
	}

	// Step 1: validate before touching the network.
	if req.VariantID == "" {
		return nil, fmt.Errorf("%w: variant id is required", ErrInvalidInput)
	}
	country := refdata.NormalizeCountry(req.Location.CountryCode)
	if country == "" {
		return nil, fmt.Errorf("%w: unrecognized country %q (want a 2-letter ISO code or full name, e.g. US, Canada)",
			ErrInvalidInput, req.Location.CountryCode)
	}
	currency := refdata.NormalizeCurrency(req.Currency)
	if req.Currency != "" && currency == "" {
		return nil, fmt.Errorf("%w: unrecognized currency %q (want a 3-letter ISO code, e.g. USD, EUR, GBP)",
			ErrInvalidInput, req.Currency)
	}

	// Step 2: resolve defaults.
	if currency == "" {
		currency = refdata.ExpectedCurrencyFor(country)
	}
	postal := req.Location.PostalCode
	if postal == "" {
		postal = refdata.DefaultPostalCodeFor(country)
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	requestID := uuid.New().String()
	r.logger.Info("Resolving quote",
		zap.String("request_id", requestID),
		zap.String("country", country),
		zap.String("variant_id", req.VariantID),
		zap.String("currency", currency),
	)

	// The variant lookup and the rate table are needed whichever tier
	// answers, so both are prefetched concurrently.
	var (
		variant *VariantDetails
		table   rates.Table
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := r.primary.GetVariant(gctx, req.VariantID, country)
		if err != nil {
			// Variant details ride the same upstream as the cart path;
			// their absence degrades the quote, it does not fail it.
			r.observer.RecordProviderError(r.primary.Name(), "variant_lookup")
			r.logger.Warn("Variant lookup failed",
				zap.String("request_id", requestID),
				zap.String("variant_id", req.VariantID),
				zap.Error(err))
			return nil
		}
		variant = v
		return nil
	})
	g.Go(func() error {
		table = r.rates.Get(gctx, r.config.BaseCurrency)
		return nil
	})
	g.Wait()

	if variant != nil && !variant.AvailableForSale {
		return nil, fmt.Errorf("%w: %s", ErrVariantUnavailable, req.VariantID)
	}

	// Steps 3-4: primary attempt, then zone fallback. Strictly sequential.
	result, err := r.resolvePrimary(ctx, &EstimateRequest{
		VariantID:   req.VariantID,
		CountryCode: country,
		Province:    req.Location.Province,
		PostalCode:  postal,
		Quantity:    quantity,
	}, variant, req.Location.PostalCode != "")
	if err != nil {
		r.observer.RecordProviderError(r.primary.Name(), "estimate")
		r.logger.Warn("Primary quote failed, falling back to zone rates",
			zap.String("request_id", requestID),
			zap.String("country", country),
			zap.Error(err))
		result, err = r.resolveFallback(ctx, country, variant, quantity)
		if err != nil {
			r.observer.RecordProviderError(r.secondary.Name(), "zone_rates")
			r.logger.Error("All quote providers failed",
				zap.String("request_id", requestID),
				zap.String("country", country),
				zap.Error(err))
			return nil, fmt.Errorf("%w: country=%s variant=%s", ErrQuoteUnavailable, country, req.VariantID)
		}
	}

	// Step 5: currency normalization.
	if err := r.normalize(result, currency, table); err != nil {
		return nil, err
	}

	// Step 6: assemble the remaining envelope.
	result.RequestID = requestID
	result.Country = country
	result.VariantID = req.VariantID
	result.Currency = currency
	result.Timestamp = time.Now().UTC()

	r.logger.Info("Quote resolved",
		zap.String("request_id", requestID),
		zap.String("provenance", string(result.Provenance)),
		zap.String("accuracy", string(result.Accuracy)),
		zap.Int("options", len(result.Options)),
	)
	return result, nil
}

// resolvePrimary runs the cart-based estimate and shapes it into a result.
func (r *Resolver) resolvePrimary(ctx context.Context, req *EstimateRequest, variant *VariantDetails, postalSupplied bool) (*QuoteResult, error) {
	est, err := r.primary.GetEstimate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPrimaryQuoteFailed, r.primary.Name(), err)
	}

	accuracy := AccuracyApproximate
	if postalSupplied {
		accuracy = AccuracyExact
	}

	return &QuoteResult{
		Variant:     variant,
		Options:     est.Options,
		Subtotal:    est.Subtotal,
		Tax:         est.Tax,
		Duties:      est.Duties,
		Provenance:  ProvenanceCartAPI,
		Accuracy:    accuracy,
		CheckoutURL: est.CheckoutURL,
	}, nil
}

// resolveFallback recovers statically configured zone rates. No
// location-precise computation happens at this tier, so accuracy is always
// AccuracyFallback. The cost breakdown is reconstructed from the variant
// price since the zone API carries none.
func (r *Resolver) resolveFallback(ctx context.Context, country string, variant *VariantDetails, quantity int) (*QuoteResult, error) {
	options, err := r.secondary.GetZoneRates(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAdminQuoteFailed, r.secondary.Name(), err)
	}

	subtotal := Money{Amount: decimal.Zero, Currency: r.config.BaseCurrency}
	if variant != nil {
		subtotal = Money{
			Amount:   variant.Price.Amount.Mul(decimal.NewFromInt(int64(quantity))),
			Currency: variant.Price.Currency,
		}
	}

	return &QuoteResult{
		Variant:    variant,
		Options:    options,
		Subtotal:   subtotal,
		Tax:        Money{Amount: decimal.Zero, Currency: subtotal.Currency},
		Duties:     Money{Amount: decimal.Zero, Currency: subtotal.Currency},
		Provenance: ProvenanceZoneAPIFallback,
		Accuracy:   AccuracyFallback,
	}, nil
}

// normalize re-denominates every monetary field into currency and derives
// the total from the unified components. A missing rate entry fails the
// whole request rather than leaving mixed currencies behind.
func (r *Resolver) normalize(result *QuoteResult, currency string, table rates.Table) error {
	for i := range result.Options {
		opt := &result.Options[i]
		if opt.Price.Currency == currency {
			continue
		}
		converted, err := rates.Convert(opt.Price.Amount, opt.Price.Currency, currency, table)
		if err != nil {
			return err
		}
		opt.Price = Money{Amount: converted, Currency: currency}
		opt.Converted = true
	}

	for _, m := range []*Money{&result.Subtotal, &result.Tax, &result.Duties} {
		if m.Currency == currency {
			continue
		}
		converted, err := rates.Convert(m.Amount, m.Currency, currency, table)
		if err != nil {
			return err
		}
		*m = Money{Amount: converted, Currency: currency}
	}

	if result.Variant != nil && result.Variant.Price.Currency != currency {
		converted, err := rates.Convert(result.Variant.Price.Amount, result.Variant.Price.Currency, currency, table)
		if err != nil {
			return err
		}
		result.Variant.Price = Money{Amount: converted, Currency: currency}
		result.Variant.Converted = true
		if result.Variant.CompareAtPrice != nil {
			cmp, err := rates.Convert(result.Variant.CompareAtPrice.Amount, result.Variant.CompareAtPrice.Currency, currency, table)
			if err != nil {
				return err
			}
			result.Variant.CompareAtPrice = &Money{Amount: cmp, Currency: currency}
		}
	}

	// The selected option is the first one, matching upstream ordering.
	result.Shipping = Money{Amount: decimal.Zero, Currency: currency}
	if len(result.Options) > 0 {
		result.Shipping = result.Options[0].Price
	}
	result.Total = Money{
		Amount:   result.Subtotal.Amount.Add(result.Shipping.Amount).Add(result.Tax.Amount).Add(result.Duties.Amount),
		Currency: currency,
	}
	return nil
}
