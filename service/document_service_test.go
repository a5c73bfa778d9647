package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Amit12200412/ai-legal-assistant/doccheck"
	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/nlp"
	"github.com/Amit12200412/ai-legal-assistant/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocRepo struct {
	docs   []*models.GeneratedDocument
	nextID int64
}

func (r *fakeDocRepo) Store(_ context.Context, doc *models.GeneratedDocument) error {
	r.nextID++
	doc.ID = r.nextID
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeDocRepo) GetByID(_ context.Context, id int64) (*models.GeneratedDocument, error) {
	for _, doc := range r.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDocRepo) ListByUsername(_ context.Context, username string) ([]*models.GeneratedDocument, error) {
	var out []*models.GeneratedDocument
	for i := len(r.docs) - 1; i >= 0; i-- {
		if r.docs[i].Username == username {
			meta := *r.docs[i]
			meta.Content = nil
			out = append(out, &meta)
		}
	}
	return out, nil
}

type fakeArchive struct {
	puts map[uuid.UUID][]byte
	fail bool
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{puts: make(map[uuid.UUID][]byte)}
}

func (a *fakeArchive) Put(_ context.Context, key uuid.UUID, filename string, data io.Reader) (string, error) {
	if a.fail {
		return "", errors.New("archive unavailable")
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	a.puts[key] = content
	return filename, nil
}

func (a *fakeArchive) Get(_ context.Context, key uuid.UUID, _ string) (io.ReadCloser, error) {
	content, ok := a.puts[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (a *fakeArchive) Delete(_ context.Context, key uuid.UUID, _ string) error {
	delete(a.puts, key)
	return nil
}

type lineSegmenter struct{}

func (lineSegmenter) Tokens(text string) ([]nlp.Token, error) {
	var tokens []nlp.Token
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, nlp.Token{Text: word, Tag: "NN"})
	}
	return tokens, nil
}

func (lineSegmenter) Entities(string) ([]nlp.Entity, error) { return nil, nil }

func (lineSegmenter) Sentences(text string) ([]string, error) {
	var sentences []string
	for _, s := range strings.Split(text, ". ") {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences, nil
}

func newDocumentService(repo *fakeDocRepo, archive *fakeArchive) *DocumentService {
	return NewDocumentService(
		DocWithDocumentRepository(repo),
		DocWithArchive(archive),
		DocWithChecker(doccheck.NewChecker(lineSegmenter{})),
	)
}

func TestGenerateStoresPDFAndArchiveCopy(t *testing.T) {
	repo := &fakeDocRepo{}
	archive := newFakeArchive()
	svc := newDocumentService(repo, archive)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Username: "alice",
		Type:     models.DocTypeComplaint,
		Name:     "Alice Kumar",
		Address:  "12 MG Road, Pune",
		Mobile:   "9876543210",
		Against:  "Unknown person",
		Details:  "My bicycle was stolen from the society parking on the night of 14 January.",
		Statute:  "IPC 378",
	})
	require.NoError(t, err)

	doc := result.Document
	assert.NotZero(t, doc.ID)
	assert.Equal(t, "alice", doc.Username)
	assert.Equal(t, models.DocTypeComplaint, doc.Type)
	assert.True(t, strings.HasPrefix(doc.Filename, "complaint_"))
	assert.True(t, strings.HasSuffix(doc.Filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF")))

	require.NotNil(t, doc.ArchiveKey)
	archived, ok := archive.puts[*doc.ArchiveKey]
	require.True(t, ok)
	assert.Equal(t, doc.Content, archived)
}

func TestGenerateSurvivesArchiveFailure(t *testing.T) {
	repo := &fakeDocRepo{}
	archive := newFakeArchive()
	archive.fail = true
	svc := newDocumentService(repo, archive)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Username: "alice",
		Type:     models.DocTypeLegalNotice,
		Name:     "Alice Kumar",
		Details:  "Notice details.",
	})
	require.NoError(t, err)

	// Archiving is best effort; the document is still persisted
	assert.Nil(t, result.Document.ArchiveKey)
	assert.Len(t, repo.docs, 1)
}

func TestGenerateValidation(t *testing.T) {
	svc := newDocumentService(&fakeDocRepo{}, newFakeArchive())
	ctx := context.Background()

	_, err := svc.Generate(ctx, GenerateRequest{Username: "alice", Type: models.DocTypeAffidavit, Name: "", Details: "x"})
	assert.Error(t, err)

	_, err = svc.Generate(ctx, GenerateRequest{Username: "alice", Type: models.DocTypeAffidavit, Name: "Alice", Details: "  "})
	assert.Error(t, err)

	_, err = svc.Generate(ctx, GenerateRequest{Username: "alice", Type: "memo", Name: "Alice", Details: "x"})
	assert.Error(t, err)
}

func TestGetAndListDocuments(t *testing.T) {
	repo := &fakeDocRepo{}
	svc := newDocumentService(repo, newFakeArchive())
	ctx := context.Background()

	result, err := svc.Generate(ctx, GenerateRequest{
		Username: "alice",
		Type:     models.DocTypeAffidavit,
		Name:     "Alice Kumar",
		Details:  "I solemnly affirm the statements below are true.",
	})
	require.NoError(t, err)

	got, err := svc.GetDocument(ctx, GetDocumentRequest{ID: result.Document.ID})
	require.NoError(t, err)
	assert.Equal(t, result.Document.Content, got.Document.Content)

	list, err := svc.ListDocuments(ctx, ListDocumentsRequest{Username: "alice"})
	require.NoError(t, err)
	require.Len(t, list.Documents, 1)
	assert.Empty(t, list.Documents[0].Content)

	_, err = svc.GetDocument(ctx, GetDocumentRequest{ID: 999})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCheckUpload(t *testing.T) {
	svc := newDocumentService(&fakeDocRepo{}, newFakeArchive())
	ctx := context.Background()

	clean, err := svc.CheckUpload(ctx, CheckUploadRequest{
		Text: "This agreement is made between the parties named below. Both parties agree to the terms set out in this document.",
	})
	require.NoError(t, err)
	assert.NotNil(t, clean.Warnings)
	assert.Empty(t, clean.Warnings)

	flagged, err := svc.CheckUpload(ctx, CheckUploadRequest{Text: "Draft ??? lorem ipsum placeholder."})
	require.NoError(t, err)
	assert.NotEmpty(t, flagged.Warnings)
}
