// Package marketdata is the REST client for the market quote provider used
// to value holdings. Stock and crypto quotes come from separate endpoints
// of the same provider.
package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tracker/src/config"
	"tracker/src/models"
	"tracker/src/utils"
	"tracker/src/utils/requests"
)

type MarketDataClientI interface {
	GetQuote(symbol string, assetType models.AssetType) (*QuoteResponse, error)
}

type MarketDataClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
}

// NewClient creates a new instance of MarketDataClient
func NewClient(cfg *config.Config) *MarketDataClient {
	return &MarketDataClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.ExternalClients.MarketData.BaseURL,
		APIKey:  cfg.ExternalClients.MarketData.APIKey,
	}
}

// GetQuote fetches the current quote for one symbol.
func (c *MarketDataClient) GetQuote(symbol string, assetType models.AssetType) (*QuoteResponse, error) {
	var endpoint string
	switch assetType {
	case models.AssetTypeCrypto:
		endpoint = fmt.Sprintf("%s/v1/crypto/%s/quote", c.BaseURL, symbol)
	default:
		endpoint = fmt.Sprintf("%s/v1/stocks/%s/quote", c.BaseURL, symbol)
	}

	params := url.Values{}
	if c.APIKey != "" {
		params.Add("apikey", c.APIKey)
	}

	resp, err := c.API.Get(endpoint, "", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, utils.NotFound(fmt.Sprintf("symbol %s not found", symbol))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewHTTPError(resp.StatusCode, "quote fetch failed: "+resp.Status)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var quote QuoteResponse
	if err := json.Unmarshal(responseBody, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
