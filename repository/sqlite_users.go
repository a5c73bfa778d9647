package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amit12200412/ai-legal-assistant/models"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// SQLiteUserRepository handles account rows in SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLite user repository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new account. The username primary key makes the
// uniqueness check atomic: of two concurrent signups for the same name,
// exactly one succeeds and the other gets ErrDuplicateUsername.
func (r *SQLiteUserRepository) Create(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO users (username, password_hash, lang) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, account.Username, account.PasswordHash, account.Language)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// GetByUsername retrieves an account by username
func (r *SQLiteUserRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT username, password_hash, lang FROM users WHERE username = ?`

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.Username,
		&account.PasswordHash,
		&account.Language,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return account, nil
}

// UpdateLanguage changes the account's preferred language
func (r *SQLiteUserRepository) UpdateLanguage(ctx context.Context, username string, lang models.Language) error {
	query := `UPDATE users SET lang = ? WHERE username = ?`

	result, err := r.db.ExecContext(ctx, query, lang, username)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
