package tokenizer

import (
	"strings"

	"github.com/baditaflorin/go_rouge_l/internal/ports"
)

// DefaultTokenizer implements the default tokenization strategy: trim,
// lowercase, split on any run of whitespace. Punctuation and markup are not
// stripped; a token like `"data":` or `<div>` survives verbatim minus case.
type DefaultTokenizer struct{}

// NewDefaultTokenizer creates a new default tokenizer.
func NewDefaultTokenizer() ports.Tokenizer {
	return &DefaultTokenizer{}
}

// Tokenize splits the input text into lowercase whitespace-delimited tokens.
// Empty or whitespace-only input yields a nil sequence.
func (t *DefaultTokenizer) Tokenize(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Fields(strings.ToLower(text))
}
