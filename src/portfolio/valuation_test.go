package portfolio_test

import (
	"testing"

	"tracker/src/models"
	"tracker/src/portfolio"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuate(t *testing.T) {
	holding := models.Holding{
		Symbol:    "AAPL",
		AssetType: models.AssetTypeStock,
		Quantity:  decimal.NewFromInt(10),
		AvgCost:   decimal.NewFromInt(150),
	}

	t.Run("quoted holding gets market value and unrealized P&L", func(t *testing.T) {
		quotes := map[string]models.Quote{
			holding.Key(): {Symbol: "AAPL", AssetType: models.AssetTypeStock, Price: decimal.NewFromInt(180)},
		}

		positions := portfolio.Valuate([]models.Holding{holding}, quotes)

		require.Len(t, positions, 1)
		p := positions[0]
		assert.True(t, p.Quoted)
		assert.True(t, p.MarketValue.Equal(decimal.NewFromInt(1800)))
		assert.True(t, p.CostBasis.Equal(decimal.NewFromInt(1500)))
		assert.True(t, p.UnrealizedPL.Equal(decimal.NewFromInt(300)))
		assert.True(t, p.UnrealizedPLPc.Equal(decimal.NewFromInt(20)), "plPercent = %s", p.UnrealizedPLPc)
	})

	t.Run("unquoted holding is carried at cost", func(t *testing.T) {
		positions := portfolio.Valuate([]models.Holding{holding}, nil)

		require.Len(t, positions, 1)
		p := positions[0]
		assert.False(t, p.Quoted)
		assert.True(t, p.MarketValue.Equal(p.CostBasis))
		assert.True(t, p.UnrealizedPL.IsZero())
	})
}
