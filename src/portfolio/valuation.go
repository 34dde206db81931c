package portfolio

import (
	"github.com/shopspring/decimal"

	"tracker/src/models"
)

var hundred = decimal.NewFromInt(100)

// Position is a holding joined with its current market quote.
type Position struct {
	models.Holding
	Price          decimal.Decimal `json:"price"`
	MarketValue    decimal.Decimal `json:"marketValue"`
	CostBasis      decimal.Decimal `json:"costBasis"`
	UnrealizedPL   decimal.Decimal `json:"unrealizedPl"`
	UnrealizedPLPc decimal.Decimal `json:"unrealizedPlPercent"`
	Quoted         bool            `json:"quoted"`
}

// Valuate joins holdings with quotes keyed by models.HoldingKey. A holding
// with no quote is carried at cost with Quoted = false rather than dropped.
func Valuate(holdings []models.Holding, quotes map[string]models.Quote) []Position {
	positions := make([]Position, 0, len(holdings))
	for _, h := range holdings {
		p := Position{Holding: h, CostBasis: h.AvgCost.Mul(h.Quantity)}

		q, ok := quotes[h.Key()]
		if !ok {
			p.Price = h.AvgCost
			p.MarketValue = p.CostBasis
			positions = append(positions, p)
			continue
		}

		p.Quoted = true
		p.Price = q.Price
		p.MarketValue = q.Price.Mul(h.Quantity)
		p.UnrealizedPL = p.MarketValue.Sub(p.CostBasis)
		if !p.CostBasis.IsZero() {
			p.UnrealizedPLPc = p.UnrealizedPL.Div(p.CostBasis).Mul(hundred)
		}
		positions = append(positions, p)
	}
	return positions
}
