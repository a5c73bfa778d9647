package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/google/uuid"
)

// SQLiteDocumentRepository handles generated document rows in SQLite
type SQLiteDocumentRepository struct {
	db *sql.DB
}

// NewSQLiteDocumentRepository creates a new SQLite document repository
func NewSQLiteDocumentRepository(db *sql.DB) *SQLiteDocumentRepository {
	return &SQLiteDocumentRepository{db: db}
}

// Store inserts a new generated document with its rendered bytes
func (r *SQLiteDocumentRepository) Store(ctx context.Context, doc *models.GeneratedDocument) error {
	query := `
		INSERT INTO pdfs (username, filename, content_blob, doc_type, archive_key, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(
		ctx, query,
		doc.Username,
		doc.Filename,
		doc.Content,
		doc.Type,
		archiveKeyValue(doc.ArchiveKey),
		doc.CreatedAt,
	)
	if err != nil {
		return err
	}

	doc.ID, err = result.LastInsertId()
	return err
}

// GetByID retrieves a document including its content blob
func (r *SQLiteDocumentRepository) GetByID(ctx context.Context, id int64) (*models.GeneratedDocument, error) {
	doc := &models.GeneratedDocument{}
	var archiveKey sql.NullString
	query := `
		SELECT id, username, filename, content_blob, doc_type, archive_key, created_at
		FROM pdfs
		WHERE id = ?`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.Username,
		&doc.Filename,
		&doc.Content,
		&doc.Type,
		&archiveKey,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc.ArchiveKey = parseArchiveKey(archiveKey)
	return doc, nil
}

// ListByUsername retrieves a user's document metadata, newest first. The
// content blob is left unloaded; fetch a single document to download it.
func (r *SQLiteDocumentRepository) ListByUsername(ctx context.Context, username string) ([]*models.GeneratedDocument, error) {
	query := `
		SELECT id, username, filename, doc_type, archive_key, created_at
		FROM pdfs
		WHERE username = ?
		ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.GeneratedDocument
	for rows.Next() {
		doc := &models.GeneratedDocument{}
		var archiveKey sql.NullString
		err := rows.Scan(
			&doc.ID,
			&doc.Username,
			&doc.Filename,
			&doc.Type,
			&archiveKey,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		doc.ArchiveKey = parseArchiveKey(archiveKey)
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func archiveKeyValue(key *uuid.UUID) interface{} {
	if key == nil {
		return nil
	}
	return key.String()
}

func parseArchiveKey(value sql.NullString) *uuid.UUID {
	if !value.Valid || value.String == "" {
		return nil
	}
	key, err := uuid.Parse(value.String)
	if err != nil {
		log.Printf("Warning: malformed archive key %q: %v", value.String, err)
		return nil
	}
	return &key
}
