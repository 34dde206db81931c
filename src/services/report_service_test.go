package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/src/models"
	"tracker/src/portfolio"
)

type fakePortfolioService struct {
	positions []portfolio.Position
	err       error
}

func (f *fakePortfolioService) GetHoldings(_ context.Context, _ string) ([]models.Holding, error) {
	return nil, nil
}

func (f *fakePortfolioService) GetValuation(_ context.Context, _ string) ([]portfolio.Position, error) {
	return f.positions, f.err
}

func (f *fakePortfolioService) RecordTransaction(_ context.Context, _ *models.Transaction) error {
	return nil
}

func (f *fakePortfolioService) GetTransactions(_ context.Context, _ string) ([]models.Transaction, error) {
	return nil, nil
}

func position(symbol string, assetType models.AssetType, qty, avgCost string, quoted bool, price string) portfolio.Position {
	q := decimal.RequireFromString(qty)
	c := decimal.RequireFromString(avgCost)
	p := portfolio.Position{
		Holding: models.Holding{
			Symbol:    symbol,
			AssetType: assetType,
			Quantity:  q,
			AvgCost:   c,
		},
		CostBasis: q.Mul(c),
		Quoted:    quoted,
	}
	if quoted {
		p.Price = decimal.RequireFromString(price)
		p.MarketValue = q.Mul(p.Price)
		p.UnrealizedPL = p.MarketValue.Sub(p.CostBasis)
		if !p.CostBasis.IsZero() {
			p.UnrealizedPLPc = p.UnrealizedPL.Div(p.CostBasis).Mul(decimal.NewFromInt(100))
		}
	}
	return p
}

func TestReportService_BuildValuationCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("renders holdings and quote columns", func(t *testing.T) {
		svc := NewReportService(&fakePortfolioService{positions: []portfolio.Position{
			position("AAPL", models.AssetTypeStock, "10", "150", true, "180"),
			position("BTC", models.AssetTypeCrypto, "0.5", "40000", false, ""),
		}})

		out, err := svc.BuildValuationCSV(ctx, "client-1")
		require.NoError(t, err)

		csv := string(out)
		lines := strings.Split(strings.TrimSpace(csv), "\n")
		require.Len(t, lines, 3)

		header := lines[0]
		assert.Contains(t, header, "Symbol")
		assert.Contains(t, header, "AvgCost")
		assert.Contains(t, header, "MarketValue")

		assert.Contains(t, csv, "AAPL")
		assert.Contains(t, csv, "1800")
		// Unquoted holdings keep their cost columns.
		assert.Contains(t, csv, "BTC")
		assert.Contains(t, csv, "20000")
	})

	t.Run("no positions yields header only", func(t *testing.T) {
		svc := NewReportService(&fakePortfolioService{})

		out, err := svc.BuildValuationCSV(ctx, "client-1")
		require.NoError(t, err)
		assert.Equal(t, "Key,Symbol,AssetType,Quantity,AvgCost,CostBasis\n", string(out))
	})

	t.Run("nothing quoted skips the quote columns", func(t *testing.T) {
		svc := NewReportService(&fakePortfolioService{positions: []portfolio.Position{
			position("ETH", models.AssetTypeCrypto, "2", "2000", false, ""),
		}})

		out, err := svc.BuildValuationCSV(ctx, "client-1")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		require.Len(t, lines, 2)
		assert.NotContains(t, lines[0], "MarketValue")
		assert.Contains(t, lines[1], "ETH")
	})

	t.Run("valuation failure propagates", func(t *testing.T) {
		svc := NewReportService(&fakePortfolioService{err: errors.New("db down")})

		_, err := svc.BuildValuationCSV(ctx, "client-1")
		assert.Error(t, err)
	})
}
