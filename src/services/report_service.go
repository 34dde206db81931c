package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"tracker/src/utils"
)

type ReportServiceI interface {
	BuildValuationCSV(ctx context.Context, clientID string) ([]byte, error)
}

// ReportService renders the valuation report served by the API as a CSV
// download. The holdings columns and the quote columns are built as separate
// frames and joined on the composite key, so unquoted holdings still show up
// with their cost columns filled.
type ReportService struct {
	portfolioService PortfolioServiceI
}

func NewReportService(portfolioService PortfolioServiceI) *ReportService {
	return &ReportService{portfolioService: portfolioService}
}

func (s *ReportService) BuildValuationCSV(ctx context.Context, clientID string) ([]byte, error) {
	positions, err := s.portfolioService.GetValuation(ctx, clientID)
	if err != nil {
		return nil, err
	}

	holdingRows := [][]string{{"Key", "Symbol", "AssetType", "Quantity", "AvgCost", "CostBasis"}}
	quoteRows := [][]string{{"Key", "Price", "MarketValue", "UnrealizedPL", "UnrealizedPLPercent"}}

	for _, p := range positions {
		key := p.Key()
		holdingRows = append(holdingRows, []string{
			key,
			p.Symbol,
			string(p.AssetType),
			p.Quantity.String(),
			p.AvgCost.String(),
			p.CostBasis.String(),
		})
		if !p.Quoted {
			continue
		}
		quoteRows = append(quoteRows, []string{
			key,
			p.Price.String(),
			p.MarketValue.String(),
			p.UnrealizedPL.String(),
			p.UnrealizedPLPc.StringFixed(2),
		})
	}

	if len(holdingRows) == 1 {
		// No positions: emit the header row only.
		return []byte("Key,Symbol,AssetType,Quantity,AvgCost,CostBasis\n"), nil
	}

	merged := dataframe.LoadRecords(holdingRows)
	if len(quoteRows) > 1 {
		merged = utils.UnionDataFramesByIndex(merged, dataframe.LoadRecords(quoteRows), "Key")
	}

	var buf bytes.Buffer
	if err := merged.WriteCSV(&buf); err != nil {
		return nil, fmt.Errorf("failed to render valuation report: %w", err)
	}
	return buf.Bytes(), nil
}
