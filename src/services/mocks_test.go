package services_test

import (
	"context"
	"errors"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"tracker/src/models"
)

// fakeRecordRepo is an in-memory RecordRepository.
type fakeRecordRepo struct {
	records map[string]models.Record
}

func newFakeRecordRepo(records ...models.Record) *fakeRecordRepo {
	repo := &fakeRecordRepo{records: map[string]models.Record{}}
	for _, r := range records {
		repo.records[r.ID] = r
	}
	return repo
}

func (f *fakeRecordRepo) GetByClientID(_ context.Context, clientID, kind string) ([]models.Record, error) {
	var out []models.Record
	for _, r := range f.records {
		if r.ClientID == clientID && !r.Deleted && (kind == "" || r.Kind == kind) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) GetDeletedIDs(_ context.Context, clientID, kind string) ([]string, error) {
	var out []string
	for _, r := range f.records {
		if r.ClientID == clientID && r.Deleted && (kind == "" || r.Kind == kind) {
			out = append(out, r.ID)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (*models.Record, error) {
	if r, ok := f.records[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeRecordRepo) Upsert(_ context.Context, r *models.Record, _ pgx.Tx) error {
	f.records[r.ID] = *r
	return nil
}

func (f *fakeRecordRepo) UpsertBatch(_ context.Context, records []models.Record, _ pgx.Tx) error {
	for _, r := range records {
		f.records[r.ID] = r
	}
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	r, ok := f.records[id]
	if !ok {
		return nil
	}
	r.Deleted = true
	f.records[id] = r
	return nil
}

// fakeRemoteStore is an in-memory remote record store.
type fakeRemoteStore struct {
	records  map[string]models.Record
	upserted []models.Record
	deleted  []string
	listErr  error
}

func newFakeRemoteStore(records ...models.Record) *fakeRemoteStore {
	store := &fakeRemoteStore{records: map[string]models.Record{}}
	for _, r := range records {
		store.records[r.ID] = r
	}
	return store
}

func (f *fakeRemoteStore) ListRecords(_, clientID, kind string) ([]models.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Record
	for _, r := range f.records {
		if r.ClientID == clientID && (kind == "" || r.Kind == kind) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRemoteStore) UpsertRecords(_ string, records []models.Record) error {
	f.upserted = append(f.upserted, records...)
	for _, r := range records {
		f.records[r.ID] = r
	}
	return nil
}

func (f *fakeRemoteStore) DeleteRecords(_ string, ids []string) error {
	f.deleted = append(f.deleted, ids...)
	for _, id := range ids {
		delete(f.records, id)
	}
	return nil
}

// fakeSyncLogRepo records sync passes in memory.
type fakeSyncLogRepo struct {
	dates map[string][]time.Time
}

func newFakeSyncLogRepo() *fakeSyncLogRepo {
	return &fakeSyncLogRepo{dates: map[string][]time.Time{}}
}

func (f *fakeSyncLogRepo) MarkClientForDate(_ context.Context, clientID string, syncDate time.Time) error {
	f.dates[clientID] = append(f.dates[clientID], syncDate)
	return nil
}

func (f *fakeSyncLogRepo) GetLastSyncDate(_ context.Context, clientID string) (*time.Time, error) {
	dates := f.dates[clientID]
	if len(dates) == 0 {
		return nil, nil
	}
	last := dates[len(dates)-1]
	return &last, nil
}

func (f *fakeSyncLogRepo) CleanupSyncLogs(_ context.Context, clientID string, startDate, endDate time.Time) error {
	var kept []time.Time
	for _, d := range f.dates[clientID] {
		if d.Before(startDate) || d.After(endDate) {
			kept = append(kept, d)
		}
	}
	f.dates[clientID] = kept
	return nil
}

// fakeTransactionRepo is an in-memory TransactionRepository.
type fakeTransactionRepo struct {
	transactions []models.Transaction
}

func (f *fakeTransactionRepo) GetByClientID(_ context.Context, clientID string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *models.Transaction, _ pgx.Tx) error {
	t.ID = len(f.transactions) + 1
	f.transactions = append(f.transactions, *t)
	return nil
}

func (f *fakeTransactionRepo) CreateBatch(ctx context.Context, transactions []models.Transaction, tx pgx.Tx) error {
	for i := range transactions {
		if err := f.Create(ctx, &transactions[i], tx); err != nil {
			return err
		}
	}
	return nil
}

// fakeHoldingRepo stores the last snapshot per client.
type fakeHoldingRepo struct {
	snapshots map[string][]models.Holding
}

func newFakeHoldingRepo() *fakeHoldingRepo {
	return &fakeHoldingRepo{snapshots: map[string][]models.Holding{}}
}

func (f *fakeHoldingRepo) GetByClientID(_ context.Context, clientID string) ([]models.Holding, error) {
	return f.snapshots[clientID], nil
}

func (f *fakeHoldingRepo) ReplaceForClient(_ context.Context, clientID string, holdings []models.Holding, _ time.Time) error {
	f.snapshots[clientID] = holdings
	return nil
}

// fakeKVCache is an in-memory KVCache; expirations are ignored.
type fakeKVCache struct {
	entries map[string][]byte
}

func newFakeKVCache() *fakeKVCache {
	return &fakeKVCache{entries: map[string][]byte{}}
}

func (f *fakeKVCache) Set(key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeKVCache) Get(key string, result interface{}) error {
	data, ok := f.entries[key]
	if !ok {
		return errors.New("key does not exist: " + key)
	}
	return json.Unmarshal(data, result)
}

func (f *fakeKVCache) Delete(key string) error {
	delete(f.entries, key)
	return nil
}
