package repository

import (
	"context"

	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresChatRepository handles chat transcript rows in Postgres
type PostgresChatRepository struct {
	db *pgxpool.Pool
}

// NewPostgresChatRepository creates a new Postgres chat repository
func NewPostgresChatRepository(db *pgxpool.Pool) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

// Append inserts a new chat entry
func (r *PostgresChatRepository) Append(ctx context.Context, entry *models.ChatLogEntry) error {
	query := `
		INSERT INTO chats (username, role, message, ts)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRow(ctx, query, entry.Username, entry.Role, entry.Message, entry.CreatedAt).Scan(&entry.ID)
}

// ListByUsername retrieves a user's transcript, oldest first
func (r *PostgresChatRepository) ListByUsername(ctx context.Context, username string) ([]*models.ChatLogEntry, error) {
	query := `
		SELECT id, username, role, message, ts
		FROM chats
		WHERE username = $1
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ChatLogEntry
	for rows.Next() {
		entry := &models.ChatLogEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.Username,
			&entry.Role,
			&entry.Message,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
