package portfolio_test

import (
	"testing"
	"time"

	"tracker/src/models"
	"tracker/src/portfolio"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func tx(symbol string, assetType models.AssetType, kind models.TransactionType, qty, price float64, date time.Time) models.Transaction {
	return models.Transaction{
		ClientID:        "client-1",
		Symbol:          symbol,
		AssetType:       assetType,
		TransactionType: kind,
		Quantity:        decimal.NewFromFloat(qty),
		Price:           decimal.NewFromFloat(price),
		Date:            date,
	}
}

func TestAggregate(t *testing.T) {
	t.Run("two buys produce one holding with weighted average cost", func(t *testing.T) {
		txs := []models.Transaction{
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 100, day(1)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 200, day(2)),
		}

		holdings := portfolio.Aggregate(txs)

		require.Len(t, holdings, 1)
		assert.Equal(t, "AAPL", holdings[0].Symbol)
		assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(20)), "quantity = %s", holdings[0].Quantity)
		assert.True(t, holdings[0].AvgCost.Equal(decimal.NewFromInt(150)), "avgCost = %s", holdings[0].AvgCost)
	})

	t.Run("oversell closes the holding instead of going negative", func(t *testing.T) {
		txs := []models.Transaction{
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 100, day(1)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 200, day(2)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeSell, 25, 300, day(3)),
		}

		assert.Empty(t, portfolio.Aggregate(txs))
	})

	t.Run("sell to exactly zero closes the holding", func(t *testing.T) {
		txs := []models.Transaction{
			tx("BTC", models.AssetTypeCrypto, models.TransactionTypeBuy, 2, 40000, day(1)),
			tx("BTC", models.AssetTypeCrypto, models.TransactionTypeSell, 2, 45000, day(2)),
		}

		assert.Empty(t, portfolio.Aggregate(txs))
	})

	t.Run("partial sell keeps average cost", func(t *testing.T) {
		txs := []models.Transaction{
			tx("ETH", models.AssetTypeCrypto, models.TransactionTypeBuy, 10, 2000, day(1)),
			tx("ETH", models.AssetTypeCrypto, models.TransactionTypeSell, 4, 2500, day(2)),
		}

		holdings := portfolio.Aggregate(txs)

		require.Len(t, holdings, 1)
		assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(6)))
		assert.True(t, holdings[0].AvgCost.Equal(decimal.NewFromInt(2000)))
	})

	t.Run("out-of-order input yields the same result", func(t *testing.T) {
		first := tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 100, day(1))
		second := tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 200, day(2))

		ordered := portfolio.Aggregate([]models.Transaction{first, second})
		reversed := portfolio.Aggregate([]models.Transaction{second, first})

		require.Len(t, ordered, 1)
		require.Len(t, reversed, 1)
		assert.True(t, ordered[0].Quantity.Equal(reversed[0].Quantity))
		assert.True(t, ordered[0].AvgCost.Equal(reversed[0].AvgCost))
	})

	t.Run("same symbol across asset classes stays separate", func(t *testing.T) {
		txs := []models.Transaction{
			tx("DOT", models.AssetTypeStock, models.TransactionTypeBuy, 5, 10, day(1)),
			tx("DOT", models.AssetTypeCrypto, models.TransactionTypeBuy, 7, 6, day(2)),
		}

		holdings := portfolio.Aggregate(txs)

		require.Len(t, holdings, 2)
		assert.NotEqual(t, holdings[0].Key(), holdings[1].Key())
	})

	t.Run("sell with no open holding is ignored but reported", func(t *testing.T) {
		txs := []models.Transaction{
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeSell, 5, 100, day(1)),
			tx("MSFT", models.AssetTypeStock, models.TransactionTypeBuy, 1, 400, day(2)),
		}

		report := portfolio.AggregateReport(txs)

		require.Len(t, report.Holdings, 1)
		assert.Equal(t, "MSFT", report.Holdings[0].Symbol)
		require.Len(t, report.IgnoredSells, 1)
		assert.Equal(t, "AAPL", report.IgnoredSells[0].Symbol)
	})

	t.Run("rebuy after close starts a fresh cost basis", func(t *testing.T) {
		txs := []models.Transaction{
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 100, day(1)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeSell, 10, 120, day(2)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 5, 130, day(3)),
		}

		holdings := portfolio.Aggregate(txs)

		require.Len(t, holdings, 1)
		assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(5)))
		assert.True(t, holdings[0].AvgCost.Equal(decimal.NewFromInt(130)))
	})

	t.Run("repeated close and reopen keeps one entry per key", func(t *testing.T) {
		txs := []models.Transaction{
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 10, 100, day(1)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeSell, 10, 120, day(2)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 5, 130, day(3)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeSell, 5, 140, day(4)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 2, 150, day(5)),
		}

		holdings := portfolio.Aggregate(txs)

		require.Len(t, holdings, 1)
		assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(2)))
		assert.True(t, holdings[0].AvgCost.Equal(decimal.NewFromInt(150)))
	})

	t.Run("zero-quantity buys never divide by zero", func(t *testing.T) {
		txs := []models.Transaction{
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 0, 100, day(1)),
			tx("AAPL", models.AssetTypeStock, models.TransactionTypeBuy, 0, 200, day(2)),
		}

		holdings := portfolio.Aggregate(txs)

		require.Len(t, holdings, 1)
		assert.True(t, holdings[0].Quantity.IsZero())
		assert.True(t, holdings[0].AvgCost.Equal(decimal.NewFromInt(100)))
	})

	t.Run("weighted average stays exact over many small buys", func(t *testing.T) {
		// 0.1 is not representable in binary floating point; a float64 fold
		// drifts here while the decimal fold must not.
		var txs []models.Transaction
		for i := 0; i < 1000; i++ {
			txs = append(txs, tx("VT", models.AssetTypeStock, models.TransactionTypeBuy, 0.1, 10.1, day(1)))
		}

		holdings := portfolio.Aggregate(txs)

		require.Len(t, holdings, 1)
		assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(100)), "quantity = %s", holdings[0].Quantity)
		assert.True(t, holdings[0].AvgCost.Equal(decimal.NewFromFloat(10.1)), "avgCost = %s", holdings[0].AvgCost)
	})

	t.Run("empty log yields no holdings", func(t *testing.T) {
		assert.Empty(t, portfolio.Aggregate(nil))
	})
}
