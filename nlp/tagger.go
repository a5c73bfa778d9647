package nlp

import "strings"

// Token is a single token with its part-of-speech tag (Penn Treebank set)
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Entity is a named-entity span with its label
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Tagger is the boundary to the lexical tagging engine. Implementations
// tokenize raw text, tag parts of speech, extract named entities and split
// sentences; everything above this interface only consumes their output.
type Tagger interface {
	Tokens(text string) ([]Token, error)
	Entities(text string) ([]Entity, error)
	Sentences(text string) ([]string, error)
}

// IsNoun reports whether tag is any Penn Treebank noun tag (NN, NNS, NNP, NNPS)
func IsNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// IsVerb reports whether tag is any Penn Treebank verb tag (VB, VBD, VBG, VBN, VBP, VBZ)
func IsVerb(tag string) bool {
	return strings.HasPrefix(tag, "VB")
}
