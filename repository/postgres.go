package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		lang TEXT NOT NULL DEFAULT 'en'
	)`,
	`CREATE TABLE IF NOT EXISTS history (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		query TEXT NOT NULL,
		actions_json TEXT NOT NULL DEFAULT '[]',
		proofs_json TEXT NOT NULL DEFAULT '[]',
		win INTEGER NOT NULL,
		ipc TEXT NOT NULL,
		ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS pdfs (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		filename TEXT NOT NULL,
		content_blob BYTEA NOT NULL,
		doc_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS chats (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		role TEXT NOT NULL,
		message TEXT NOT NULL,
		ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE pdfs ADD COLUMN IF NOT EXISTS archive_key UUID`,
}

// NewPostgresPool connects to Postgres and applies the schema. Schema
// application is idempotent, including the archive_key column migration.
func NewPostgresPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	for _, stmt := range postgresSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return pool, nil
}
