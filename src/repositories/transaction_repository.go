package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracker/src/models"
)

type TransactionRepository interface {
	GetByClientID(ctx context.Context, clientID string) ([]models.Transaction, error)
	Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error
	CreateBatch(ctx context.Context, transactions []models.Transaction, tx pgx.Tx) error
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, symbol, asset_type, transaction_type, quantity, price, total_value, date, tags
		FROM transactions
		WHERE client_id = $1 AND deleted = FALSE
		ORDER BY date ASC, id ASC`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var date time.Time
		if err := rows.Scan(&t.ID, &t.ClientID, &t.Symbol, &t.AssetType, &t.TransactionType,
			&t.Quantity, &t.Price, &t.TotalValue, &date, &t.Tags); err != nil {
			return nil, err
		}
		t.Date = date
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error {
	query := `
		INSERT INTO transactions (client_id, symbol, asset_type, transaction_type, quantity, price, total_value, date, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var err error
	if tx == nil {
		// If no transaction is provided, create a new one
		tx, err = r.db.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback(ctx)
			}
		}()

		err = tx.QueryRow(ctx, query,
			t.ClientID, t.Symbol, t.AssetType, t.TransactionType, t.Quantity, t.Price, t.TotalValue, t.Date, t.Tags,
		).Scan(&t.ID)
		if err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	return tx.QueryRow(ctx, query,
		t.ClientID, t.Symbol, t.AssetType, t.TransactionType, t.Quantity, t.Price, t.TotalValue, t.Date, t.Tags,
	).Scan(&t.ID)
}

func (r *transactionRepo) CreateBatch(ctx context.Context, transactions []models.Transaction, tx pgx.Tx) error {
	if len(transactions) == 0 {
		return nil
	}

	var err error
	owned := tx == nil
	if owned {
		tx, err = r.db.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback(ctx)
			}
		}()
	}

	for i := range transactions {
		if err = r.Create(ctx, &transactions[i], tx); err != nil {
			return err
		}
	}

	if owned {
		return tx.Commit(ctx)
	}
	return nil
}
