// Package doccheck runs simple quality checks over uploaded plain-text
// documents: placeholder markers, minimum length and over-long sentences.
// Analysis is read-only and results are never persisted.
package doccheck

import (
	"strings"

	"github.com/Amit12200412/ai-legal-assistant/nlp"
)

// WarningKind identifies one class of document problem
type WarningKind string

const (
	WarningIncomplete      WarningKind = "incomplete"
	WarningPlaceholderText WarningKind = "placeholder_text"
	WarningLongSentence    WarningKind = "long_sentence"
)

// Warning is one reported problem. Sentence carries the offending sentence
// for long-sentence warnings and is empty otherwise.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Message  string      `json:"message"`
	Sentence string      `json:"sentence,omitempty"`
}

const (
	minDocumentLength = 50
	maxSentenceWords  = 25
	maxLongSentences  = 5
)

// Checker scans documents for quality problems
type Checker struct {
	tagger nlp.Tagger
}

// NewChecker creates a checker using the given tagger for sentence splitting
func NewChecker(tagger nlp.Tagger) *Checker {
	return &Checker{tagger: tagger}
}

// Check evaluates every warning condition independently and returns all that
// apply; an empty result means no issues were found. At most the first five
// over-long sentences are reported, one warning each.
func (c *Checker) Check(text string) ([]Warning, error) {
	var warnings []Warning

	if strings.Contains(text, "???") || len(text) < minDocumentLength {
		warnings = append(warnings, Warning{
			Kind:    WarningIncomplete,
			Message: "The document appears incomplete: it is very short or contains unresolved markers.",
		})
	}

	if strings.Contains(strings.ToLower(text), "lorem") {
		warnings = append(warnings, Warning{
			Kind:    WarningPlaceholderText,
			Message: "The document contains placeholder text that should be replaced.",
		})
	}

	sentences, err := c.tagger.Sentences(text)
	if err != nil {
		return nil, err
	}

	reported := 0
	for _, sentence := range sentences {
		if reported >= maxLongSentences {
			break
		}
		if len(strings.Fields(sentence)) > maxSentenceWords {
			warnings = append(warnings, Warning{
				Kind:     WarningLongSentence,
				Message:  "This sentence is lengthy and complex; consider simplifying it.",
				Sentence: sentence,
			})
			reported++
		}
	}

	return warnings, nil
}
