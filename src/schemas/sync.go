package schemas

// SyncResult summarizes one reconciliation pass for a client.
type SyncResult struct {
	ClientID   string   `json:"clientId"`
	Kind       string   `json:"kind,omitempty"`
	Merged     int      `json:"merged"`
	Pulled     int      `json:"pulled"`
	Pushed     int      `json:"pushed"`
	Deleted    int      `json:"deleted"`
	LocalWins  []string `json:"localWins,omitempty"`
	RemoteWins []string `json:"remoteWins,omitempty"`
	NewLocal   []string `json:"newLocal,omitempty"`
	NewRemote  []string `json:"newRemote,omitempty"`
}

// SyncStatus reports when a client last completed a pass.
type SyncStatus struct {
	ClientID     string  `json:"clientId"`
	LastSyncDate *string `json:"lastSyncDate,omitempty"`
}
