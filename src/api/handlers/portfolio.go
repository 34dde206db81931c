package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tracker/src/schemas"
	"tracker/src/utils"
)

func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clientID := chi.URLParam(r, "clientID")

	holdings, err := h.Controllers.Portfolio.GetHoldings(ctx, clientID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) GetValuation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	clientID := chi.URLParam(r, "clientID")

	positions, err := h.Controllers.Portfolio.GetValuation(ctx, clientID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, positions, http.StatusOK)
}

func (h *Handler) GetValuationReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	clientID := chi.URLParam(r, "clientID")

	report, err := h.Controllers.Portfolio.GetValuationReport(ctx, clientID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="valuation-`+clientID+`.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	tx, err := h.Controllers.Portfolio.CreateTransaction(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, tx, http.StatusCreated)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clientID := r.URL.Query().Get("clientId")

	transactions, err := h.Controllers.Portfolio.GetTransactions(ctx, clientID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transactions, http.StatusOK)
}
