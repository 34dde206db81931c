package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SyncClient(w http.ResponseWriter, r *http.Request) {
	// A full pass fetches the remote snapshot and pushes deltas back, so it
	// gets a longer deadline than the read endpoints.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	token := jwtauth.TokenFromHeader(r)
	clientID := chi.URLParam(r, "clientID")
	kind := r.URL.Query().Get("kind")

	result, err := h.Controllers.Sync.SyncClient(ctx, token, clientID, kind)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) GetSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clientID := chi.URLParam(r, "clientID")

	status, err := h.Controllers.Sync.GetSyncStatus(ctx, clientID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, status, http.StatusOK)
}
