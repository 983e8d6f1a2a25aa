package main

import (
	"context"

	"github.com/tournevent/shipquote/internal/config"
	"github.com/tournevent/shipquote/internal/server"
	"github.com/tournevent/shipquote/internal/telemetry"
	"github.com/tournevent/shipquote/pkg/quote"
	"github.com/tournevent/shipquote/pkg/quote/adminzones"
	"github.com/tournevent/shipquote/pkg/quote/storefront"
	"github.com/tournevent/shipquote/pkg/rates"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}

	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
}

func initQuotePipeline(cfg *config.Config, metrics *telemetry.Metrics, logger *otelzap.Logger, tracer trace.Tracer) (*quote.Resolver, server.ShopInfoSource) {
	primary := storefront.New(storefront.Config{
		ShopDomain:  cfg.ShopDomain,
		AccessToken: cfg.StorefrontAccessToken,
		APIVersion:  cfg.APIVersion,
		UseMock:     cfg.StorefrontUseMock,
	}, logger, tracer)

	secondary := adminzones.New(adminzones.Config{
		ShopDomain:  cfg.ShopDomain,
		AccessToken: cfg.AdminAccessToken,
		APIVersion:  cfg.APIVersion,
		UseMock:     cfg.AdminUseMock,
	}, logger, tracer)

	var rateAPI rates.APIClient
	if cfg.ExchangeRateUseMock {
		rateAPI = rates.NewMockAPIClient()
	} else {
		rateAPI = rates.NewHTTPAPIClient(rates.HTTPAPIClientConfig{
			BaseURL: cfg.ExchangeRateBaseURL,
			APIKey:  cfg.ExchangeRateAPIKey,
		})
	}
	rateCache := rates.NewCache(rates.CacheConfig{
		TTL:      cfg.RatesTTL,
		Observer: metrics,
	}, rateAPI, logger)

	resolver := quote.NewResolver(quote.Config{
		BaseCurrency: cfg.BaseCurrency,
		Observer:     metrics,
	}, primary, secondary, rateCache, logger, tracer)

	return resolver, secondary
}
