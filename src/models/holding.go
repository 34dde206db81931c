package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is the derived position for one (symbol, asset type) pair. It is
// recomputed from the transaction log on every aggregation pass; rows in the
// holdings table are a snapshot, never the source of truth.
type Holding struct {
	ID        int             `db:"id" json:"id"`
	ClientID  string          `db:"client_id" json:"clientId"`
	Symbol    string          `db:"symbol" json:"symbol"`
	AssetType AssetType       `db:"asset_type" json:"assetType"`
	Quantity  decimal.Decimal `db:"quantity" json:"quantity"`
	AvgCost   decimal.Decimal `db:"avg_cost" json:"avgCost"`
	Date      time.Time       `db:"date" json:"date"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// Key returns the composite aggregation key for the holding.
func (h Holding) Key() string {
	return HoldingKey(h.Symbol, h.AssetType)
}

// HoldingKey builds the composite key distinguishing otherwise identical
// symbols across asset classes.
func HoldingKey(symbol string, assetType AssetType) string {
	return symbol + ":" + string(assetType)
}
