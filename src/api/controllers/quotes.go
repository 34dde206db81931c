package controllers

import (
	"context"

	"tracker/src/models"
	"tracker/src/services"
	"tracker/src/utils"
)

type QuotesControllerI interface {
	GetQuote(ctx context.Context, assetType, symbol string) (*models.Quote, error)
}

type QuotesController struct {
	quoteService services.QuoteServiceI
}

func NewQuotesController(quoteService services.QuoteServiceI) *QuotesController {
	return &QuotesController{quoteService: quoteService}
}

func (c *QuotesController) GetQuote(ctx context.Context, assetType, symbol string) (*models.Quote, error) {
	at := models.AssetType(assetType)
	if at != models.AssetTypeStock && at != models.AssetTypeCrypto {
		return nil, utils.BadRequest("assetType must be stock or crypto")
	}
	if symbol == "" {
		return nil, utils.BadRequest("symbol is required")
	}
	return c.quoteService.GetQuote(ctx, symbol, at)
}
