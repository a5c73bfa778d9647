package repository

import (
	"context"
	"database/sql"

	"github.com/Amit12200412/ai-legal-assistant/models"
)

// SQLiteChatRepository handles chat transcript rows in SQLite
type SQLiteChatRepository struct {
	db *sql.DB
}

// NewSQLiteChatRepository creates a new SQLite chat repository
func NewSQLiteChatRepository(db *sql.DB) *SQLiteChatRepository {
	return &SQLiteChatRepository{db: db}
}

// Append inserts a new chat entry
func (r *SQLiteChatRepository) Append(ctx context.Context, entry *models.ChatLogEntry) error {
	query := `INSERT INTO chats (username, role, message, ts) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, entry.Username, entry.Role, entry.Message, entry.CreatedAt)
	if err != nil {
		return err
	}

	entry.ID, err = result.LastInsertId()
	return err
}

// ListByUsername retrieves a user's transcript, oldest first
func (r *SQLiteChatRepository) ListByUsername(ctx context.Context, username string) ([]*models.ChatLogEntry, error) {
	query := `
		SELECT id, username, role, message, ts
		FROM chats
		WHERE username = ?
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, username)
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
