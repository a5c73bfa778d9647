package repository

import (
	"context"
	"database/sql"

	"github.com/Amit12200412/ai-legal-assistant/models"
)

// SQLiteHistoryRepository handles query history rows in SQLite
type SQLiteHistoryRepository struct {
	db *sql.DB
}

// NewSQLiteHistoryRepository creates a new SQLite history repository
func NewSQLiteHistoryRepository(db *sql.DB) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{db: db}
}

// Append inserts a new query record
func (r *SQLiteHistoryRepository) Append(ctx context.Context, record *models.QueryRecord) error {
	query := `
		INSERT INTO history (username, query, actions_json, proofs_json, win, ipc, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(
		ctx, query,
		record.Username,
		record.QueryText,
		record.MatchedActions,
		record.MatchedProofs,
		record.WinEstimate,
		record.StatuteReference,
		record.CreatedAt,
	)
	if err != nil {
		return err
	}

	record.ID, err = result.LastInsertId()
	return err
}

// ListByUsername retrieves a user's query records, newest first
func (r *SQLiteHistoryRepository) ListByUsername(ctx context.Context, username string) ([]*models.QueryRecord, error) {
	query := `
		SELECT id, username, query, actions_json, proofs_json, win, ipc, ts
		FROM history
		WHERE username = ?
		ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.QueryRecord
	for rows.Next() {
		record := &models.QueryRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Username,
			&record.QueryText,
			&record.MatchedActions,
			&record.MatchedProofs,
			&record.WinEstimate,
			&record.StatuteReference,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
