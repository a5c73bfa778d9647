package repository

import (
	"context"

	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresHistoryRepository handles query history rows in Postgres
type PostgresHistoryRepository struct {
	db *pgxpool.Pool
}

// NewPostgresHistoryRepository creates a new Postgres history repository
func NewPostgresHistoryRepository(db *pgxpool.Pool) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// Append inserts a new query record
func (r *PostgresHistoryRepository) Append(ctx context.Context, record *models.QueryRecord) error {
	query := `
		INSERT INTO history (username, query, actions_json, proofs_json, win, ipc, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return r.db.QueryRow(
		ctx, query,
		record.Username,
		record.QueryText,
		record.MatchedActions,
		record.MatchedProofs,
		record.WinEstimate,
		record.StatuteReference,
		record.CreatedAt,
	).Scan(&record.ID)
}

// ListByUsername retrieves a user's query records, newest first
func (r *PostgresHistoryRepository) ListByUsername(ctx context.Context, username string) ([]*models.QueryRecord, error) {
	query := `
		SELECT id, username, query, actions_json, proofs_json, win, ipc, ts
		FROM history
		WHERE username = $1
		ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query, username)
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
