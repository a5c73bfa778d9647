package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies the template a generated document was built from
type DocumentType string

const (
	DocTypeComplaint   DocumentType = "complaint"
	DocTypeLegalNotice DocumentType = "legal_notice"
	DocTypeAffidavit   DocumentType = "affidavit"
)

// GeneratedDocument is a PDF produced for a user. The rendered bytes live in
// the Content blob; ArchiveKey points at the optional archive copy in file
// storage and is empty when archiving is disabled or failed.
type GeneratedDocument struct {
	ID         int64        `json:"id"`
	Username   string       `json:"username"`
	Filename   string       `json:"filename"`
	Content    []byte       `json:"-"`
	Type       DocumentType `json:"doc_type"`
	ArchiveKey *uuid.UUID   `json:"archive_key,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
