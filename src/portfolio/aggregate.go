// Package portfolio derives position state from the transaction log. Like
// the reconcile package it is pure computation: holdings are a function of
// the transactions passed in, never of prior state.
package portfolio

import (
	"sort"

	"tracker/src/models"
)

// Report is the outcome of one aggregation pass. Holdings are ordered by
// first creation; callers needing another order re-sort. IgnoredSells
// collects sell transactions that matched no open holding — the position
// map is unaffected by them, but callers may want to surface them as a
// data-consistency warning.
type Report struct {
	Holdings     []models.Holding
	IgnoredSells []models.Transaction
}

// Aggregate folds the transaction log into current holdings, one per
// (symbol, asset type) pair. See AggregateReport for the diagnostics.
func Aggregate(txs []models.Transaction) []models.Holding {
	return AggregateReport(txs).Holdings
}

// AggregateReport sorts the log by date ascending (stable, so same-day
// transactions keep their input order) and folds it sequentially:
//
//   - buy with no open holding creates one at the transaction's price
//   - buy against an open holding adds quantity and re-weights the average
//     cost by quantity
//   - sell reduces quantity and leaves the average cost untouched; at
//     quantity <= 0 the holding is closed and dropped
//   - sell with no open holding is recorded in IgnoredSells
//
// All arithmetic is decimal, so repeated weighted-average updates do not
// accumulate binary floating-point drift.
func AggregateReport(txs []models.Transaction) Report {
	ordered := make([]models.Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	holdings := make(map[string]*models.Holding, len(ordered))
	seen := make(map[string]bool, len(ordered))
	var order []string
	var ignored []models.Transaction

	for _, tx := range ordered {
		key := models.HoldingKey(tx.Symbol, tx.AssetType)
		h, open := holdings[key]

		switch tx.TransactionType {
		case models.TransactionTypeBuy:
			if !open {
				holdings[key] = &models.Holding{
					ClientID:  tx.ClientID,
					Symbol:    tx.Symbol,
					AssetType: tx.AssetType,
					Quantity:  tx.Quantity,
					AvgCost:   tx.Price,
				}
				// A key closed and re-opened keeps its original position.
				if !seen[key] {
					seen[key] = true
					order = append(order, key)
				}
				continue
			}
			// avgCost' = (avgCost*qty + price*txQty) / (qty + txQty)
			totalQty := h.Quantity.Add(tx.Quantity)
			if totalQty.IsZero() {
				// Zero-quantity buys carry no cost weight to average over.
				h.Quantity = totalQty
				continue
			}
			totalCost := h.AvgCost.Mul(h.Quantity).Add(tx.Price.Mul(tx.Quantity))
			h.Quantity = totalQty
			h.AvgCost = totalCost.Div(totalQty)

		case models.TransactionTypeSell:
			if !open {
				ignored = append(ignored, tx)
				continue
			}
			h.Quantity = h.Quantity.Sub(tx.Quantity)
			if !h.Quantity.IsPositive() {
				delete(holdings, key)
			}
		}
	}

	report := Report{IgnoredSells: ignored}
	for _, key := range order {
		if h, ok := holdings[key]; ok {
			report.Holdings = append(report.Holdings, *h)
		}
	}
	return report
}
