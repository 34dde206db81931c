package remotestore

import "tracker/src/models"

// ListRecordsResponse is the remote store's envelope for a record listing.
type ListRecordsResponse struct {
	Records []models.Record `json:"records"`
}

// UpsertRecordsRequest pushes locally newer records to the remote store.
type UpsertRecordsRequest struct {
	Records []models.Record `json:"records"`
}

// DeleteRecordsRequest removes records the user deleted locally.
type DeleteRecordsRequest struct {
	IDs []string `json:"ids"`
}
