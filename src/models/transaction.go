package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
)

type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

type Transaction struct {
	ID              int             `db:"id" json:"id"`
	ClientID        string          `db:"client_id" json:"clientId"`
	Symbol          string          `db:"symbol" json:"symbol"`
	AssetType       AssetType       `db:"asset_type" json:"assetType"`
	TransactionType TransactionType `db:"transaction_type" json:"type"`
	Quantity        decimal.Decimal `db:"quantity" json:"quantity"`
	Price           decimal.Decimal `db:"price" json:"price"`
	TotalValue      decimal.Decimal `db:"total_value" json:"totalValue"`
	Date            time.Time       `db:"date" json:"date"`
	Tags            []string        `db:"tags" json:"tags,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	Deleted         bool            `db:"deleted" json:"-"`
	DeletedAt       *time.Time      `db:"deleted_at" json:"-"`
}
