package controllers

import (
	"context"
	"time"

	"tracker/src/models"
	"tracker/src/portfolio"
	"tracker/src/reconcile"
	"tracker/src/schemas"
	"tracker/src/services"
	"tracker/src/utils"
)

type PortfolioControllerI interface {
	GetHoldings(ctx context.Context, clientID string) (*schemas.HoldingsResponse, error)
	GetValuation(ctx context.Context, clientID string) ([]portfolio.Position, error)
	GetValuationReport(ctx context.Context, clientID string) ([]byte, error)
	CreateTransaction(ctx context.Context, req *schemas.CreateTransactionRequest) (*models.Transaction, error)
	GetTransactions(ctx context.Context, clientID string) ([]models.Transaction, error)
}

type PortfolioController struct {
	portfolioService services.PortfolioServiceI
	reportService    services.ReportServiceI
}

func NewPortfolioController(portfolioService services.PortfolioServiceI, reportService services.ReportServiceI) *PortfolioController {
	return &PortfolioController{
		portfolioService: portfolioService,
		reportService:    reportService,
	}
}

func (c *PortfolioController) GetHoldings(ctx context.Context, clientID string) (*schemas.HoldingsResponse, error) {
	holdings, err := c.portfolioService.GetHoldings(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &schemas.HoldingsResponse{ClientID: clientID, Holdings: holdings}, nil
}

func (c *PortfolioController) GetValuation(ctx context.Context, clientID string) ([]portfolio.Position, error) {
	return c.portfolioService.GetValuation(ctx, clientID)
}

func (c *PortfolioController) GetValuationReport(ctx context.Context, clientID string) ([]byte, error) {
	return c.reportService.BuildValuationCSV(ctx, clientID)
}

func (c *PortfolioController) CreateTransaction(ctx context.Context, req *schemas.CreateTransactionRequest) (*models.Transaction, error) {
	if req.ClientID == "" || req.Symbol == "" {
		return nil, utils.BadRequest("clientId and symbol are required")
	}
	if !req.Quantity.IsPositive() {
		return nil, utils.BadRequest("quantity must be positive")
	}
	if req.Price.IsNegative() {
		return nil, utils.BadRequest("price must not be negative")
	}

	assetType := models.AssetType(req.AssetType)
	if assetType != models.AssetTypeStock && assetType != models.AssetTypeCrypto {
		return nil, utils.BadRequest("assetType must be stock or crypto")
	}
	txType := models.TransactionType(req.Type)
	if txType != models.TransactionTypeBuy && txType != models.TransactionTypeSell {
		return nil, utils.BadRequest("type must be buy or sell")
	}

	date := reconcile.ParseStamp(req.Date)
	if date.IsZero() {
		return nil, utils.BadRequest("date must be an ISO-8601 date")
	}

	tx := &models.Transaction{
		ClientID:        req.ClientID,
		Symbol:          req.Symbol,
		AssetType:       assetType,
		TransactionType: txType,
		Quantity:        req.Quantity,
		Price:           req.Price,
		Date:            date,
		Tags:            req.Tags,
		CreatedAt:       time.Now().UTC(),
	}
	if err := c.portfolioService.RecordTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (c *PortfolioController) GetTransactions(ctx context.Context, clientID string) ([]models.Transaction, error) {
	if clientID == "" {
		return nil, utils.BadRequest("clientId query parameter is required")
	}
	return c.portfolioService.GetTransactions(ctx, clientID)
}
