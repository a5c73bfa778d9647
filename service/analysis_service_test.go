package service

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/Amit12200412/ai-legal-assistant/classify"
	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/nlp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nounTagger tags every whitespace token as a noun
type nounTagger struct{}

func (nounTagger) Tokens(text string) ([]nlp.Token, error) {
	var tokens []nlp.Token
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, nlp.Token{Text: word, Tag: "NN"})
	}
	return tokens, nil
}

func (nounTagger) Entities(string) ([]nlp.Entity, error) { return nil, nil }

func (nounTagger) Sentences(text string) ([]string, error) { return []string{text}, nil }

type fakeHistoryRepo struct {
	records []*models.QueryRecord
	nextID  int64
}

func (r *fakeHistoryRepo) Append(_ context.Context, record *models.QueryRecord) error {
	r.nextID++
	record.ID = r.nextID
	r.records = append(r.records, record)
	return nil
}

func (r *fakeHistoryRepo) ListByUsername(_ context.Context, username string) ([]*models.QueryRecord, error) {
	var out []*models.QueryRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Username == username {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func newAnalysisService(historyRepo *fakeHistoryRepo) *AnalysisService {
	return NewAnalysisService(
		AnalysisWithClassifier(classify.NewClassifier(nounTagger{})),
		AnalysisWithEstimator(classify.NewEstimator(rand.NewSource(1))),
		AnalysisWithHistoryRepository(historyRepo),
	)
}

func TestAnalyzeWithoutSave(t *testing.T) {
	repo := &fakeHistoryRepo{}
	svc := newAnalysisService(repo)

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Username:  "alice",
		QueryText: "someone committed theft at my shop",
	})
	require.NoError(t, err)

	assert.Equal(t, "theft", result.Category.Key)
	assert.Equal(t, "IPC 378", result.Category.StatuteCode)
	assert.GreaterOrEqual(t, result.WinEstimate, 50)
	assert.LessOrEqual(t, result.WinEstimate, 95)
	assert.Nil(t, result.Record)
	assert.Empty(t, repo.records)
}

func TestAnalyzeSavesRecord(t *testing.T) {
	repo := &fakeHistoryRepo{}
	svc := newAnalysisService(repo)
	ctx := context.Background()

	result, err := svc.Analyze(ctx, AnalyzeRequest{
		Username:  "alice",
		QueryText: "someone committed theft at my shop",
		Save:      true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Record)

	assert.Equal(t, "alice", result.Record.Username)
	assert.Equal(t, "someone committed theft at my shop", result.Record.QueryText)
	assert.Equal(t, "IPC 378", result.Record.StatuteReference)
	assert.Equal(t, result.WinEstimate, result.Record.WinEstimate)
	assert.EqualValues(t, result.Category.RecommendedActions, result.Record.MatchedActions)
	assert.EqualValues(t, result.Category.RequiredProofs, result.Record.MatchedProofs)
	assert.False(t, result.Record.CreatedAt.IsZero())

	history, err := svc.History(ctx, HistoryRequest{Username: "alice"})
	require.NoError(t, err)
	require.Len(t, history.Records, 1)
	assert.Equal(t, result.Record.ID, history.Records[0].ID)
}

func TestAnalyzeEmptyQuery(t *testing.T) {
	svc := newAnalysisService(&fakeHistoryRepo{})

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Username: "alice", QueryText: "   "})
	assert.ErrorIs(t, err, classify.ErrInvalidInput)
}

func TestAnalyzeUnmatchedQueryFallsBack(t *testing.T) {
	svc := newAnalysisService(&fakeHistoryRepo{})

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Username:  "alice",
		QueryText: "what are my options here",
	})
	require.NoError(t, err)
	assert.Equal(t, "general", result.Category.Key)
	assert.Equal(t, "General Legal Matter", result.Category.StatuteCode)
}
