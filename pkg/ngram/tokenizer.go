package ngram

import "strings"

// Tokenizer is an interface that defines the contract for splitting raw
// text into tokens. This allows the core model logic to be independent of
// the specific tokenization strategy.
type Tokenizer interface {
	// Tokenize converts raw text into an ordered sequence of tokens.
	// It must be a pure function of its input and must return an empty
	// slice for empty or whitespace-only text.
	Tokenize(text string) []string
}

// DefaultTokenizer is the default implementation of the Tokenizer
// interface. It lowercases the input and splits it on runs of whitespace,
// discarding empty fragments. Punctuation attached to a word stays part of
// the token; no other normalization is applied.
type DefaultTokenizer struct{}

// NewDefaultTokenizer creates a new tokenizer with default behavior.
func NewDefaultTokenizer() *DefaultTokenizer {
	return &DefaultTokenizer{}
}

// Tokenize implements the Tokenizer interface.
func (t *DefaultTokenizer) Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
