package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseTagger implements Tagger on top of the prose NLP library
type ProseTagger struct{}

// NewProseTagger creates a prose-backed tagger
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tokens returns the part-of-speech tagged tokens of text
func (t *ProseTagger) Tokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return tokens, nil
}

// Entities returns the named entities detected in text
func (t *ProseTagger) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract entities: %w", err)
	}

	proseEnts := doc.Entities()
	entities := make([]Entity, 0, len(proseEnts))
	for _, ent := range proseEnts {
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}

// Sentences returns the sentence spans of text
func (t *ProseTagger) Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to segment text: %w", err)
	}

	proseSents := doc.Sentences()
	sentences := make([]string, 0, len(proseSents))
	for _, sent := range proseSents {
		sentences = append(sentences, sent.Text)
	}
	return sentences, nil
}
