package services

import (
	"context"
	"fmt"
	"time"

	"tracker/src/models"
	"tracker/src/portfolio"
	"tracker/src/repositories"
	"tracker/src/utils"
)

// KVCache is the slice of the Redis handler the services need. Kept small
// so tests can stub it.
type KVCache interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, result interface{}) error
	Delete(key string) error
}

type PortfolioServiceI interface {
	GetHoldings(ctx context.Context, clientID string) ([]models.Holding, error)
	GetValuation(ctx context.Context, clientID string) ([]portfolio.Position, error)
	RecordTransaction(ctx context.Context, t *models.Transaction) error
	GetTransactions(ctx context.Context, clientID string) ([]models.Transaction, error)
}

// PortfolioService recomputes holdings from the transaction log on demand.
// The holdings table and the Redis entry are both snapshots of the same
// derived state; the log is the only source of truth.
type PortfolioService struct {
	transactionRepository repositories.TransactionRepository
	holdingRepository     repositories.HoldingRepository

	quoteService QuoteServiceI
	cache        KVCache
	holdingsTTL  time.Duration
}

func NewPortfolioService(transactionRepository repositories.TransactionRepository, holdingRepository repositories.HoldingRepository, quoteService QuoteServiceI, cache KVCache, holdingsTTL time.Duration) *PortfolioService {
	return &PortfolioService{
		transactionRepository: transactionRepository,
		holdingRepository:     holdingRepository,
		quoteService:          quoteService,
		cache:                 cache,
		holdingsTTL:           holdingsTTL,
	}
}

func holdingsCacheKey(clientID string) string {
	return fmt.Sprintf("%s:%s", utils.CacheKeyHoldingsPrefix, clientID)
}

func (s *PortfolioService) GetHoldings(ctx context.Context, clientID string) ([]models.Holding, error) {
	logger := utils.LoggerFromContext(ctx)

	if s.cache != nil {
		var cached []models.Holding
		if err := s.cache.Get(holdingsCacheKey(clientID), &cached); err == nil {
			return cached, nil
		}
	}

	txs, err := s.transactionRepository.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for client %s: %w", clientID, err)
	}

	report := portfolio.AggregateReport(txs)
	for _, ignored := range report.IgnoredSells {
		logger.WithFields(map[string]interface{}{
			"clientID": clientID,
			"symbol":   ignored.Symbol,
			"date":     ignored.Date.Format(utils.ShortDashDateLayout),
		}).Warn("sell transaction matched no open holding; ignored")
	}

	now := time.Now().UTC()
	for i := range report.Holdings {
		report.Holdings[i].ClientID = clientID
		report.Holdings[i].Date = now
	}

	if err := s.holdingRepository.ReplaceForClient(ctx, clientID, report.Holdings, now); err != nil {
		return nil, fmt.Errorf("failed to store holdings snapshot for client %s: %w", clientID, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(holdingsCacheKey(clientID), report.Holdings, s.holdingsTTL); err != nil {
			logger.Warnf("failed to cache holdings for client %s: %v", clientID, err)
		}
	}

	return report.Holdings, nil
}

func (s *PortfolioService) GetValuation(ctx context.Context, clientID string) ([]portfolio.Position, error) {
	holdings, err := s.GetHoldings(ctx, clientID)
	if err != nil {
		return nil, err
	}

	logger := utils.LoggerFromContext(ctx)
	quotes := make(map[string]models.Quote, len(holdings))
	for _, h := range holdings {
		quote, err := s.quoteService.GetQuote(ctx, h.Symbol, h.AssetType)
		if err != nil {
			// A missing quote degrades that position to cost basis.
			logger.Warnf("no quote for %s: %v", h.Key(), err)
			continue
		}
		quotes[h.Key()] = *quote
	}

	return portfolio.Valuate(holdings, quotes), nil
}

func (s *PortfolioService) RecordTransaction(ctx context.Context, t *models.Transaction) error {
	if t.TotalValue.IsZero() {
		t.TotalValue = t.Price.Mul(t.Quantity)
	}
	if err := s.transactionRepository.Create(ctx, t, nil); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	// The stored snapshot is stale now; drop the cached copy so the next
	// read recomputes.
	if s.cache != nil {
		_ = s.cache.Delete(holdingsCacheKey(t.ClientID))
	}
	return nil
}

func (s *PortfolioService) GetTransactions(ctx context.Context, clientID string) ([]models.Transaction, error) {
	return s.transactionRepository.GetByClientID(ctx, clientID)
}
