package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Amit12200412/ai-legal-assistant/classify"
	"github.com/Amit12200412/ai-legal-assistant/doccheck"
	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/repository"
	"github.com/Amit12200412/ai-legal-assistant/storage"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// ErrEmptyDocument is returned when an uploaded document has no readable text
var ErrEmptyDocument = errors.New("document is empty or unreadable")

var docTypeTitles = map[models.DocumentType]string{
	models.DocTypeComplaint:   "Police Complaint",
	models.DocTypeLegalNotice: "Legal Notice",
	models.DocTypeAffidavit:   "Affidavit",
}

// DocumentService generates filled legal documents as PDFs and runs quality
// checks over uploaded text documents
type DocumentService struct {
	docRepo repository.DocumentRepository
	archive storage.Archive
	checker *doccheck.Checker
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocWithDocumentRepository sets the document repository
func DocWithDocumentRepository(repo repository.DocumentRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.docRepo = repo
	}
}

// DocWithArchive sets the PDF archive backend
func DocWithArchive(archive storage.Archive) DocumentServiceOption {
	return func(s *DocumentService) {
		s.archive = archive
	}
}

// DocWithChecker sets the document quality checker
func DocWithChecker(checker *doccheck.Checker) DocumentServiceOption {
	return func(s *DocumentService) {
		s.checker = checker
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateRequest carries the form fields filled into the document template
type GenerateRequest struct {
	Username string
	Type     models.DocumentType
	Name     string
	Address  string
	Mobile   string
	Against  string
	Details  string
	Statute  string
}

// GenerateResult carries the stored document, content included
type GenerateResult struct {
	Document *models.GeneratedDocument
}

// Generate renders the requested template as a PDF, persists it to the pdfs
// table, and best-effort uploads an archive copy. An archive failure is
// logged and does not fail generation.
func (s *DocumentService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if s.docRepo == nil {
		return nil, errors.New("document repository not set")
	}

	title, ok := docTypeTitles[req.Type]
	if !ok {
		return nil, fmt.Errorf("unknown document type: %s", req.Type)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Details) == "" {
		return nil, fmt.Errorf("%w: name and incident details are required", classify.ErrInvalidInput)
	}

	content, err := renderPDF(title, req)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	doc := &models.GeneratedDocument{
		Username:  req.Username,
		Filename:  fmt.Sprintf("%s_%s.pdf", req.Type, time.Now().UTC().Format("20060102_150405")),
		Content:   content,
		Type:      req.Type,
		CreatedAt: time.Now().UTC(),
	}

	if s.archive != nil {
		key := uuid.New()
		if _, err := s.archive.Put(ctx, key, doc.Filename, bytes.NewReader(content)); err != nil {
			log.Printf("Warning: failed to archive document %s: %v", doc.Filename, err)
		} else {
			doc.ArchiveKey = &key
		}
	}

	if err := s.docRepo.Store(ctx, doc); err != nil {
		return nil, err
	}

	return &GenerateResult{Document: doc}, nil
}

// renderPDF lays out a single-page document: centered title, a dated
// addressee block, the incident details and a signature line.
func renderPDF(title string, req GenerateRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 7, "Date: "+time.Now().Format("02 January 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	fields := []struct {
		label string
		value string
	}{
		{"From", req.Name},
		{"Address", req.Address},
		{"Mobile", req.Mobile},
		{"Against", req.Against},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(30, 7, f.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 7, f.value, "", "L", false)
	}
	pdf.Ln(4)

	if req.Statute != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, "Applicable provision: "+req.Statute, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "Subject: "+title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, req.Details, "", "L", false)
	pdf.Ln(10)

	pdf.CellFormat(0, 7, "Yours faithfully,", "", 1, "L", false, 0, "")
	pdf.Ln(8)
	pdf.CellFormat(0, 7, req.Name, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetDocumentRequest identifies one stored document
type GetDocumentRequest struct {
	ID int64
}

// GetDocumentResult carries the document with its content blob loaded
type GetDocumentResult struct {
	Document *models.GeneratedDocument
}

// GetDocument retrieves a stored document for download
func (s *DocumentService) GetDocument(ctx context.Context, req GetDocumentRequest) (*GetDocumentResult, error) {
	if s.docRepo == nil {
		return nil, errors.New("document repository not set")
	}

	doc, err := s.docRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &GetDocumentResult{Document: doc}, nil
}

// ListDocumentsRequest identifies the owner
type ListDocumentsRequest struct {
	Username string
}

// ListDocumentsResult carries document metadata, newest first
type ListDocumentsResult struct {
	Documents []*models.GeneratedDocument
}

// ListDocuments lists a user's generated documents
func (s *DocumentService) ListDocuments(ctx context.Context, req ListDocumentsRequest) (*ListDocumentsResult, error) {
	if s.docRepo == nil {
		return nil, errors.New("document repository not set")
	}

	docs, err := s.docRepo.ListByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	return &ListDocumentsResult{Documents: docs}, nil
}

// CheckUploadRequest carries the text of an uploaded .txt document
type CheckUploadRequest struct {
	Text string
}

// CheckUploadResult carries the warning report; an empty list means the
// document passed every check
type CheckUploadResult struct {
	Warnings []doccheck.Warning
}

// CheckUpload runs the quality checks over an uploaded document. The upload
// is analyzed in memory and never persisted.
func (s *DocumentService) CheckUpload(ctx context.Context, req CheckUploadRequest) (*CheckUploadResult, error) {
	if s.checker == nil {
		return nil, errors.New("document checker not set")
	}

	warnings, err := s.checker.Check(req.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	}

	if warnings == nil {
		warnings = []doccheck.Warning{}
	}
	return &CheckUploadResult{Warnings: warnings}, nil
}
