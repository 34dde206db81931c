package schemas

import "encoding/json"

// CreateRecordRequest is the API payload for creating or replacing a local
// record. ID is optional on create; the server assigns one when absent.
type CreateRecordRequest struct {
	ID        string          `json:"id,omitempty"`
	ClientID  string          `json:"clientId"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}
