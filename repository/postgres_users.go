package repository

import (
	"context"
	"errors"

	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// 23505 = unique_violation
const pgUniqueViolation = "23505"

// PostgresUserRepository handles account rows in Postgres
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new Postgres user repository
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts a new account; the primary key rejects duplicates atomically
func (r *PostgresUserRepository) Create(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO users (username, password_hash, lang) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, account.Username, account.PasswordHash, account.Language)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// GetByUsername retrieves an account by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT username, password_hash, lang FROM users WHERE username = $1`

	err := r.db.QueryRow(ctx, query, username).Scan(
		&account.Username,
		&account.PasswordHash,
		&account.Language,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return account, nil
}

// UpdateLanguage changes the account's preferred language
func (r *PostgresUserRepository) UpdateLanguage(ctx context.Context, username string, lang models.Language) error {
	query := `UPDATE users SET lang = $1 WHERE username = $2`

	result, err := r.db.Exec(ctx, query, lang, username)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
