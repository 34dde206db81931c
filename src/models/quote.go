package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Quote struct {
	Symbol        string          `json:"symbol"`
	AssetType     AssetType       `json:"assetType"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Currency      string          `json:"currency"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
