package services

import (
	"context"
	"fmt"
	"time"

	"tracker/src/clients/remotestore"
	"tracker/src/models"
	"tracker/src/reconcile"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"
)

// syncLogRetentionDays bounds how far back the sync_logs table is kept.
const syncLogRetentionDays = 90

type SyncServiceI interface {
	SyncClient(ctx context.Context, token, clientID, kind string) (*schemas.SyncResult, error)
	GetSyncStatus(ctx context.Context, clientID string) (*schemas.SyncStatus, error)
}

// SyncService runs reconciliation passes: it feeds the local and remote
// snapshots through the reconcile package and applies the outcome on both
// sides. The engine itself stays pure; every side effect lives here.
type SyncService struct {
	recordRepository  repositories.RecordRepository
	syncLogRepository repositories.SyncLogRepository

	remoteClient remotestore.RemoteStoreClientI
}

func NewSyncService(recordRepository repositories.RecordRepository, syncLogRepository repositories.SyncLogRepository, remoteClient remotestore.RemoteStoreClientI) *SyncService {
	return &SyncService{
		recordRepository:  recordRepository,
		syncLogRepository: syncLogRepository,
		remoteClient:      remoteClient,
	}
}

func (s *SyncService) SyncClient(ctx context.Context, token, clientID, kind string) (*schemas.SyncResult, error) {
	logger := utils.LoggerFromContext(ctx)

	local, err := s.recordRepository.GetByClientID(ctx, clientID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load local records for client %s: %w", clientID, err)
	}

	tombstones, err := s.recordRepository.GetDeletedIDs(ctx, clientID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load tombstones for client %s: %w", clientID, err)
	}

	remote, err := s.remoteClient.ListRecords(token, clientID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote records for client %s: %w", clientID, err)
	}

	res := reconcile.Merge(local, remote)

	// A remote-only id is ambiguous on its own: it is either a record another
	// device created or one the user deleted here. The local tombstones break
	// the tie. Tombstoned ids become remote deletions, the rest are pulled.
	deletedLocally := make(map[string]bool, len(tombstones))
	for _, id := range tombstones {
		deletedLocally[id] = true
	}

	pullIDs := append([]string{}, res.RemoteWins...)
	var deleted []string
	for _, id := range reconcile.DeletedIDs(local, remote) {
		if deletedLocally[id] {
			deleted = append(deleted, id)
		} else {
			pullIDs = append(pullIDs, id)
		}
	}

	pulled := pickRecords(res.Merged, pullIDs)
	if err := s.recordRepository.UpsertBatch(ctx, pulled, nil); err != nil {
		return nil, fmt.Errorf("failed to apply pulled records for client %s: %w", clientID, err)
	}

	// Push: local records absent remotely or strictly newer.
	push := reconcile.ItemsToPush(local, remote)
	if err := s.remoteClient.UpsertRecords(token, push); err != nil {
		return nil, fmt.Errorf("failed to push records for client %s: %w", clientID, err)
	}

	if err := s.remoteClient.DeleteRecords(token, deleted); err != nil {
		return nil, fmt.Errorf("failed to delete remote records for client %s: %w", clientID, err)
	}

	now := time.Now().UTC()
	if err := s.syncLogRepository.MarkClientForDate(ctx, clientID, now); err != nil {
		return nil, fmt.Errorf("failed to record sync log for client %s: %w", clientID, err)
	}

	// Prune old log rows; failure here never fails the pass.
	cutoff := now.AddDate(0, 0, -syncLogRetentionDays)
	if err := s.syncLogRepository.CleanupSyncLogs(ctx, clientID, time.Time{}, cutoff); err != nil {
		logger.Warnf("failed to prune sync logs for client %s: %v", clientID, err)
	}

	logger.WithFields(map[string]interface{}{
		"clientID": clientID,
		"kind":     kind,
		"merged":   len(res.Merged),
		"pulled":   len(pulled),
		"pushed":   len(push),
		"deleted":  len(deleted),
	}).Info("reconciliation pass completed")

	return &schemas.SyncResult{
		ClientID:   clientID,
		Kind:       kind,
		Merged:     len(res.Merged),
		Pulled:     len(pulled),
		Pushed:     len(push),
		Deleted:    len(deleted),
		LocalWins:  res.LocalWins,
		RemoteWins: res.RemoteWins,
		NewLocal:   res.NewLocal,
		NewRemote:  res.NewRemote,
	}, nil
}

func (s *SyncService) GetSyncStatus(ctx context.Context, clientID string) (*schemas.SyncStatus, error) {
	last, err := s.syncLogRepository.GetLastSyncDate(ctx, clientID)
	if err != nil {
		return nil, err
	}
	status := &schemas.SyncStatus{ClientID: clientID}
	if last != nil {
		formatted := last.Format(time.RFC3339)
		status.LastSyncDate = &formatted
	}
	return status, nil
}

func pickRecords(records []models.Record, ids []string) []models.Record {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Record
	for _, rec := range records {
		if wanted[rec.ID] {
			out = append(out, rec)
		}
	}
	return out
}
