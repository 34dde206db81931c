package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracker/src/models"
)

type RecordRepository interface {
	GetByClientID(ctx context.Context, clientID, kind string) ([]models.Record, error)
	GetDeletedIDs(ctx context.Context, clientID, kind string) ([]string, error)
	GetByID(ctx context.Context, id string) (*models.Record, error)
	Upsert(ctx context.Context, r *models.Record, tx pgx.Tx) error
	UpsertBatch(ctx context.Context, records []models.Record, tx pgx.Tx) error
	Delete(ctx context.Context, id string) error
}

type recordRepo struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) GetByClientID(ctx context.Context, clientID, kind string) ([]models.Record, error) {
	query := `SELECT id, client_id, kind, payload, updated_at, created_at
		FROM records
		WHERE client_id = $1 AND deleted = FALSE`
	args := []interface{}{clientID}
	if kind != "" {
		query += ` AND kind = $2`
		args = append(args, kind)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetDeletedIDs returns the ids of soft-deleted records. These are the
// tombstones a reconciliation pass uses to tell a locally deleted record
// apart from one it has never seen.
func (r *recordRepo) GetDeletedIDs(ctx context.Context, clientID, kind string) ([]string, error) {
	query := `SELECT id
		FROM records
		WHERE client_id = $1 AND deleted = TRUE`
	args := []interface{}{clientID}
	if kind != "" {
		query += ` AND kind = $2`
		args = append(args, kind)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (*models.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, client_id, kind, payload, updated_at, created_at
		FROM records
		WHERE id = $1 AND deleted = FALSE`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepo) Upsert(ctx context.Context, rec *models.Record, tx pgx.Tx) error {
	query := `
		INSERT INTO records (id, client_id, kind, payload, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (id) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at,
			deleted = FALSE,
			deleted_at = NULL`

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

		if _, err = tx.Exec(ctx, query, rec.ID, rec.ClientID, rec.Kind, rec.Payload, rec.UpdatedAt); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx, query, rec.ID, rec.ClientID, rec.Kind, rec.Payload, rec.UpdatedAt)
	return err
}

func (r *recordRepo) UpsertBatch(ctx context.Context, records []models.Record, tx pgx.Tx) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO records (id, client_id, kind, payload, updated_at)
		VALUES `

	args := make([]interface{}, 0, len(records)*5)
	valueStrings := make([]string, 0, len(records))
	for i, rec := range records {
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, NULLIF($%d, ''))",
			i*5+1, i*5+2, i*5+3, i*5+4, i*5+5))
		args = append(args, rec.ID, rec.ClientID, rec.Kind, rec.Payload, rec.UpdatedAt)
	}

	query += strings.Join(valueStrings, ",")
	query += ` ON CONFLICT (id) DO UPDATE SET
		payload = EXCLUDED.payload,
		updated_at = EXCLUDED.updated_at,
		deleted = FALSE,
		deleted_at = NULL`

	var err error
	if tx == nil {
		tx, err = r.db.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback(ctx)
			}
		}()

		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx, query, args...)
	return err
}

func (r *recordRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE records
		SET deleted = TRUE, deleted_at = NOW()
		WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var rec models.Record
	var updatedAt *string
	var createdAt time.Time
	if err := row.Scan(&rec.ID, &rec.ClientID, &rec.Kind, &rec.Payload, &updatedAt, &createdAt); err != nil {
		return models.Record{}, err
	}
	if updatedAt != nil {
		rec.UpdatedAt = *updatedAt
	}
	rec.CreatedAt = createdAt
	return rec, nil
}
