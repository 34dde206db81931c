package marketdata

import "github.com/shopspring/decimal"

// QuoteResponse is the provider's quote payload for one symbol.
type QuoteResponse struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Currency      string          `json:"currency"`
}
