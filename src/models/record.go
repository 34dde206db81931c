package models

import (
	"encoding/json"
	"time"
)

// Record is a generic synced row. The payload is opaque to the sync engine;
// only ID and UpdatedAt take part in reconciliation.
type Record struct {
	ID        string          `db:"id" json:"id"`
	ClientID  string          `db:"client_id" json:"clientId"`
	Kind      string          `db:"kind" json:"kind"`
	Payload   json.RawMessage `db:"payload" json:"payload,omitempty"`
	UpdatedAt string          `db:"updated_at" json:"updatedAt,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	Deleted   bool            `db:"deleted" json:"-"`
	DeletedAt *time.Time      `db:"deleted_at" json:"-"`
}

// SyncID implements reconcile.Keyed.
func (r Record) SyncID() string { return r.ID }

// SyncUpdatedAt implements reconcile.Keyed. Empty means never stamped.
func (r Record) SyncUpdatedAt() string { return r.UpdatedAt }
