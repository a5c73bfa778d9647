package service

import (
	"context"
	"errors"
	"time"

	"github.com/Amit12200412/ai-legal-assistant/classify"
	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/nlp"
	"github.com/Amit12200412/ai-legal-assistant/repository"
)

// AnalysisService runs query classification and manages saved history
type AnalysisService struct {
	classifier  *classify.Classifier
	estimator   *classify.Estimator
	historyRepo repository.HistoryRepository
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithClassifier sets the classifier
func AnalysisWithClassifier(c *classify.Classifier) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.classifier = c
	}
}

// AnalysisWithEstimator sets the outcome estimator
func AnalysisWithEstimator(e *classify.Estimator) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.estimator = e
	}
}

// AnalysisWithHistoryRepository sets the history repository
func AnalysisWithHistoryRepository(repo repository.HistoryRepository) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.historyRepo = repo
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeRequest represents one query analysis
type AnalyzeRequest struct {
	Username  string
	QueryText string
	Save      bool
}

// AnalyzeResult carries everything the results panel shows. WinEstimate is
// the cosmetic random percentage, not a computed probability.
type AnalyzeResult struct {
	Category    models.LegalCategory `json:"category"`
	Entities    []nlp.Entity         `json:"entities"`
	WinEstimate int                  `json:"win_estimate"`
	Record      *models.QueryRecord  `json:"record,omitempty"`
}

// Analyze classifies the query, attaches a win estimate, and appends the
// result to the user's history when requested.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	if s.classifier == nil || s.estimator == nil {
		return nil, errors.New("classifier not set")
	}

	match, err := s.classifier.Classify(req.QueryText)
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{
		Category:    match.Category,
		Entities:    match.Entities,
		WinEstimate: s.estimator.Estimate(),
	}

	if req.Save {
		if s.historyRepo == nil {
			return nil, errors.New("history repository not set")
		}
		record := &models.QueryRecord{
			Username:         req.Username,
			QueryText:        req.QueryText,
			MatchedActions:   match.Category.RecommendedActions,
			MatchedProofs:    match.Category.RequiredProofs,
			WinEstimate:      result.WinEstimate,
			StatuteReference: match.Category.StatuteCode,
			CreatedAt:        time.Now().UTC(),
		}
		if err := s.historyRepo.Append(ctx, record); err != nil {
			return nil, err
		}
		result.Record = record
	}

	return result, nil
}

// HistoryRequest represents a history listing
type HistoryRequest struct {
	Username string
}

// HistoryResult carries the user's saved analyses, newest first
type HistoryResult struct {
	Records []*models.QueryRecord
}

// History lists a user's saved query records
func (s *AnalysisService) History(ctx context.Context, req HistoryRequest) (*HistoryResult, error) {
	if s.historyRepo == nil {
		return nil, errors.New("history repository not set")
	}

	records, err := s.historyRepo.ListByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	return &HistoryResult{Records: records}, nil
}
