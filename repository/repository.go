package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Amit12200412/ai-legal-assistant/models"
)

// ErrDuplicateUsername is returned when a username is already taken
var ErrDuplicateUsername = errors.New("username already exists")

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// UserRepository handles account rows. There is no delete path: accounts are
// never removed, and only the language preference is mutable.
type UserRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	UpdateLanguage(ctx context.Context, username string, lang models.Language) error
}

// HistoryRepository handles saved query records, append-only
type HistoryRepository interface {
	Append(ctx context.Context, record *models.QueryRecord) error
	// ListByUsername returns records newest first
	ListByUsername(ctx context.Context, username string) ([]*models.QueryRecord, error)
}

// DocumentRepository handles generated PDF rows, append-only
type DocumentRepository interface {
	Store(ctx context.Context, doc *models.GeneratedDocument) error
	GetByID(ctx context.Context, id int64) (*models.GeneratedDocument, error)
	// ListByUsername returns document metadata newest first; Content is not loaded
	ListByUsername(ctx context.Context, username string) ([]*models.GeneratedDocument, error)
}

// ChatRepository handles chat transcript rows, append-only
type ChatRepository interface {
	Append(ctx context.Context, entry *models.ChatLogEntry) error
	// ListByUsername returns the transcript oldest first
	ListByUsername(ctx context.Context, username string) ([]*models.ChatLogEntry, error)
}

// Repositories bundles one backend's repository set
type Repositories struct {
	Users     UserRepository
	History   HistoryRepository
	Documents DocumentRepository
	Chats     ChatRepository
}

// NewRepositoriesFromEnv selects the storage backend from the environment:
// Postgres when DATABASE_URL is set, otherwise a local SQLite file at
// SQLITE_PATH (default ./data/legal.db). The returned closer shuts the
// backend down.
func NewRepositoriesFromEnv(ctx context.Context) (*Repositories, func() error, error) {
	if connString := os.Getenv("DATABASE_URL"); connString != "" {
		pool, err := NewPostgresPool(ctx, connString)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		repos := &Repositories{
			Users:     NewPostgresUserRepository(pool),
			History:   NewPostgresHistoryRepository(pool),
			Documents: NewPostgresDocumentRepository(pool),
			Chats:     NewPostgresChatRepository(pool),
		}
		return repos, func() error { pool.Close(); return nil }, nil
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./data/legal.db"
	}
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize SQLite: %w", err)
	}
	repos := &Repositories{
		Users:     NewSQLiteUserRepository(db),
		History:   NewSQLiteHistoryRepository(db),
		Documents: NewSQLiteDocumentRepository(db),
		Chats:     NewSQLiteChatRepository(db),
	}
	return repos, db.Close, nil
}
