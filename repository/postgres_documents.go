package repository

import (
	"context"
	"errors"

	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDocumentRepository handles generated document rows in Postgres
type PostgresDocumentRepository struct {
	db *pgxpool.Pool
}

// NewPostgresDocumentRepository creates a new Postgres document repository
func NewPostgresDocumentRepository(db *pgxpool.Pool) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

// Store inserts a new generated document with its rendered bytes
func (r *PostgresDocumentRepository) Store(ctx context.Context, doc *models.GeneratedDocument) error {
	query := `
		INSERT INTO pdfs (username, filename, content_blob, doc_type, archive_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return r.db.QueryRow(
		ctx, query,
		doc.Username,
		doc.Filename,
		doc.Content,
		doc.Type,
		doc.ArchiveKey,
		doc.CreatedAt,
	).Scan(&doc.ID)
}

// GetByID retrieves a document including its content blob
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id int64) (*models.GeneratedDocument, error) {
	doc := &models.GeneratedDocument{}
	query := `
		SELECT id, username, filename, content_blob, doc_type, archive_key, created_at
		FROM pdfs
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Username,
		&doc.Filename,
		&doc.Content,
		&doc.Type,
		&doc.ArchiveKey,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return doc, nil
}

// ListByUsername retrieves a user's document metadata, newest first, without
// loading content blobs
func (r *PostgresDocumentRepository) ListByUsername(ctx context.Context, username string) ([]*models.GeneratedDocument, error) {
	query := `
		SELECT id, username, filename, doc_type, archive_key, created_at
		FROM pdfs
		WHERE username = $1
		ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.GeneratedDocument
	for rows.Next() {
		doc := &models.GeneratedDocument{}
		err := rows.Scan(
			&doc.ID,
			&doc.Username,
			&doc.Filename,
			&doc.Type,
			&doc.ArchiveKey,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
