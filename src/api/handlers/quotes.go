package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assetType := chi.URLParam(r, "assetType")
	symbol := chi.URLParam(r, "symbol")

	quote, err := h.Controllers.Quotes.GetQuote(ctx, assetType, symbol)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, quote, http.StatusOK)
}
