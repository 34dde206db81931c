package schemas

import (
	"github.com/shopspring/decimal"

	"tracker/src/models"
)

// CreateTransactionRequest is the API payload for recording a buy or sell.
type CreateTransactionRequest struct {
	ClientID  string          `json:"clientId"`
	Symbol    string          `json:"symbol"`
	AssetType string          `json:"assetType"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Date      string          `json:"date"`
	Tags      []string        `json:"tags,omitempty"`
}

// HoldingsResponse carries the aggregated holdings for one client.
type HoldingsResponse struct {
	ClientID string           `json:"clientId"`
	Holdings []models.Holding `json:"holdings"`
}
