package tokenizer

import (
	"strings"

	"github.com/baditaflorin/go_rouge_l/internal/ports"
)

// FastTokenizer implements an allocation-efficient tokenization strategy.
// Tokens that are already lowercase are returned as substrings of the input
// without copying; only tokens containing uppercase letters are rewritten.
// Output is identical to the DefaultTokenizer.
type FastTokenizer struct{}

// NewFastTokenizer creates a new allocation-efficient tokenizer.
func NewFastTokenizer() ports.Tokenizer {
	return &FastTokenizer{}
}

// Tokenize splits the input text into lowercase whitespace-delimited tokens.
func (t *FastTokenizer) Tokenize(text string) []string {
	if len(text) == 0 {
		return nil
	}

	// The zero-copy path only understands single-byte characters.
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			trimmed := strings.TrimSpace(text)
			if trimmed == "" {
				return nil
			}
			return strings.Fields(strings.ToLower(trimmed))
		}
	}

	var tokens []string
	start := -1
	hasUpper := false

	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		if hasUpper {
			word = strings.ToLower(word)
		}
		tokens = append(tokens, word)
		start = -1
		hasUpper = false
	}

	for i := 0; i < len(text); i++ {
		b := text[i]
		if isASCIISpace(b) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if b >= 'A' && b <= 'Z' {
			hasUpper = true
		}
	}
	flush(len(text))

	return tokens
}

// isASCIISpace reports whether b is one of the ASCII whitespace characters
// recognized by unicode.IsSpace.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
