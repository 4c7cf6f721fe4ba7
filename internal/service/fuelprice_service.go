package service

import (
	"context"

	"go.uber.org/zap"

	"fuelmeter/internal/clients"
)

// PriceFetcher is the upstream fuel-price dataset contract.
type PriceFetcher interface {
	FetchPrices(ctx context.Context) (*clients.FuelPrices, error)
}

// PriceStore caches averaged prices. Any Get error is treated as a miss.
type PriceStore interface {
	Save(ctx context.Context, prices clients.FuelPrices) error
	Get(ctx context.Context) (*clients.FuelPrices, error)
}

// FuelPriceService serves national-average pump prices with a cache in
// front of the government dataset and configured fallbacks behind it, so
// trip-cost calculation always has a price to offer.
type FuelPriceService struct {
	client   PriceFetcher
	cache    PriceStore
	fallback clients.FuelPrices
	logger   *zap.Logger
}

// NewFuelPriceService builds FuelPriceService. cache may be nil.
func NewFuelPriceService(client PriceFetcher, cache PriceStore, fallback clients.FuelPrices, logger *zap.Logger) *FuelPriceService {
	return &FuelPriceService{
		client:   client,
		cache:    cache,
		fallback: fallback,
		logger:   logger,
	}
}

// Current returns pump prices: cache, then upstream, then fallbacks for
// whatever the upstream could not provide. Never returns an error.
func (s *FuelPriceService) Current(ctx context.Context) clients.FuelPrices {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return *cached
		}
	}

	fetched, err := s.client.FetchPrices(ctx)
	if err != nil {
		s.logger.Warn("fuel price fetch failed, using fallbacks", zap.Error(err))
		return s.fallback
	}

	prices := *fetched
	if prices.Gasoline == 0 {
		prices.Gasoline = s.fallback.Gasoline
	}
	if prices.Diesel == 0 {
		prices.Diesel = s.fallback.Diesel
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, prices); err != nil {
			s.logger.Warn("fuel price cache save failed", zap.Error(err))
		}
	}
	return prices
}
