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

func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clientID := r.URL.Query().Get("clientId")
	kind := r.URL.Query().Get("kind")

	records, err := h.Controllers.Records.GetRecords(ctx, clientID, kind)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, records, http.StatusOK)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	rec, err := h.Controllers.Records.CreateRecord(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, rec, http.StatusCreated)
}

func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := chi.URLParam(r, "id")

	var req schemas.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	rec, err := h.Controllers.Records.UpdateRecord(ctx, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, rec, http.StatusOK)
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := chi.URLParam(r, "id")

	if err := h.Controllers.Records.DeleteRecord(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
