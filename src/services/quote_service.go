package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tracker/src/clients/marketdata"
	"tracker/src/models"
	"tracker/src/utils"
)

type QuoteServiceI interface {
	GetQuote(ctx context.Context, symbol string, assetType models.AssetType) (*models.Quote, error)
}

// QuoteService serves market quotes through two cache layers: Redis shared
// across instances, and a per-process cache whose stale entries back the
// stale-if-error fallback when the provider is down.
type QuoteService struct {
	client marketdata.MarketDataClientI
	cache  KVCache
	ttl    time.Duration

	mu    sync.Mutex
	local map[string]*utils.Cache[models.Quote]
}

func NewQuoteService(client marketdata.MarketDataClientI, cache KVCache, ttl time.Duration) *QuoteService {
	return &QuoteService{
		client: client,
		cache:  cache,
		ttl:    ttl,
		local:  make(map[string]*utils.Cache[models.Quote]),
	}
}

func quoteCacheKey(symbol string, assetType models.AssetType) string {
	return fmt.Sprintf("%s:%s", utils.CacheKeyQuotePrefix, models.HoldingKey(symbol, assetType))
}

func (s *QuoteService) GetQuote(ctx context.Context, symbol string, assetType models.AssetType) (*models.Quote, error) {
	logger := utils.LoggerFromContext(ctx)
	key := quoteCacheKey(symbol, assetType)

	if s.cache != nil {
		var cached models.Quote
		if err := s.cache.Get(key, &cached); err == nil {
			return &cached, nil
		}
	}

	resp, err := s.client.GetQuote(symbol, assetType)
	if err != nil {
		// Provider down or rate limited: fall back to the last quote this
		// process saw, marked with its original fetch time.
		if stale, cachedAt, ok := s.localCache(key).GetStale(); ok {
			logger.Warnf("serving stale quote for %s (fetched %s): %v", symbol, cachedAt.Format(time.RFC3339), err)
			return &stale, nil
		}
		return nil, err
	}

	quote := models.Quote{
		Symbol:        resp.Symbol,
		AssetType:     assetType,
		Price:         resp.Price,
		Change:        resp.Change,
		ChangePercent: resp.ChangePercent,
		Currency:      resp.Currency,
		UpdatedAt:     time.Now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.Set(key, quote, s.ttl); err != nil {
			logger.Warnf("failed to cache quote for %s: %v", symbol, err)
		}
	}
	s.localCache(key).Set(quote, s.ttl)

	return &quote, nil
}

func (s *QuoteService) localCache(key string) *utils.Cache[models.Quote] {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.local[key]
	if !ok {
		c = utils.NewCache[models.Quote]()
		s.local[key] = c
	}
	return c
}
