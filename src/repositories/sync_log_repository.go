package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyncLogRepository interface {
	MarkClientForDate(ctx context.Context, clientID string, syncDate time.Time) error
	GetLastSyncDate(ctx context.Context, clientID string) (*time.Time, error)
	CleanupSyncLogs(ctx context.Context, clientID string, startDate, endDate time.Time) error
}

type syncLogRepo struct {
	DB *pgxpool.Pool
}

func NewSyncLogRepository(db *pgxpool.Pool) SyncLogRepository {
	return &syncLogRepo{DB: db}
}

func (r *syncLogRepo) MarkClientForDate(ctx context.Context, clientID string, syncDate time.Time) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO sync_logs (client_id, sync_date)
		VALUES ($1, $2)
		ON CONFLICT (client_id, sync_date) DO NOTHING`,
		clientID, syncDate)
	return err
}

func (r *syncLogRepo) GetLastSyncDate(ctx context.Context, clientID string) (*time.Time, error) {
	var syncDate time.Time
	err := r.DB.QueryRow(ctx, `
		SELECT sync_date
		FROM sync_logs
		WHERE client_id = $1
		ORDER BY sync_date DESC
		LIMIT 1
	`, clientID).Scan(&syncDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &syncDate, nil
}

func (r *syncLogRepo) CleanupSyncLogs(ctx context.Context, clientID string, startDate, endDate time.Time) error {
	_, err := r.DB.Exec(ctx, `
		DELETE FROM sync_logs
		WHERE client_id = $1
		AND sync_date >= $2
		AND sync_date <= $3
	`, clientID, startDate, endDate)
	return err
}
