package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tracker/src/models"
)

type HoldingRepository interface {
	GetByClientID(ctx context.Context, clientID string) ([]models.Holding, error)
	ReplaceForClient(ctx context.Context, clientID string, holdings []models.Holding, date time.Time) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

func (r *holdingRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, symbol, asset_type, quantity, avg_cost, date, created_at
		FROM holdings
		WHERE client_id = $1
		ORDER BY symbol ASC, asset_type ASC`,
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		var date, createdAt time.Time
		if err := rows.Scan(&h.ID, &h.ClientID, &h.Symbol, &h.AssetType, &h.Quantity, &h.AvgCost, &date, &createdAt); err != nil {
			return nil, err
		}
		h.Date = date
		h.CreatedAt = createdAt
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// ReplaceForClient swaps the client's holdings snapshot in one transaction.
// Holdings are derived state, so the previous snapshot is simply discarded.
func (r *holdingRepo) ReplaceForClient(ctx context.Context, clientID string, holdings []models.Holding, date time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM holdings WHERE client_id = $1`, clientID); err != nil {
		return err
	}

	for i := range holdings {
		h := &holdings[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO holdings (client_id, symbol, asset_type, quantity, avg_cost, date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			clientID, h.Symbol, h.AssetType, h.Quantity, h.AvgCost, date,
		).Scan(&h.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
