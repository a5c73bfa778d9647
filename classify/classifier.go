package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/nlp"
)

// ErrInvalidInput is returned for empty or whitespace-only queries
var ErrInvalidInput = errors.New("query text is empty")

// Match is the outcome of classifying one query
type Match struct {
	Category models.LegalCategory `json:"category"`
	Entities []nlp.Entity         `json:"entities"`
}

// Classifier maps free-text queries onto the static category table
type Classifier struct {
	tagger nlp.Tagger
}

// NewClassifier creates a classifier backed by the given tagger
func NewClassifier(tagger nlp.Tagger) *Classifier {
	return &Classifier{tagger: tagger}
}

// Classify tags the query, keeps the noun and verb tokens lowercased, and
// walks the Categories table in order; the first category whose trigger
// keyword appears among those tokens wins. Queries matching nothing resolve
// to DefaultCategory. Deterministic given tagger output; no side effects.
func (c *Classifier) Classify(queryText string) (*Match, error) {
	if strings.TrimSpace(queryText) == "" {
		return nil, ErrInvalidInput
	}

	tokens, err := c.tagger.Tokens(queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize query: %w", err)
	}

	keywords := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if nlp.IsNoun(tok.Tag) || nlp.IsVerb(tok.Tag) {
			keywords[strings.ToLower(tok.Text)] = true
		}
	}

	// Entity extraction is display-only; a failure here must not lose the match
	entities, err := c.tagger.Entities(queryText)
	if err != nil {
		entities = nil
	}

	for _, category := range Categories {
		if keywords[category.Key] {
			return &Match{Category: category, Entities: entities}, nil
		}
	}

	return &Match{Category: DefaultCategory, Entities: entities}, nil
}
