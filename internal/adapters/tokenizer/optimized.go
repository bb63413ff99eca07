package tokenizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_rouge_l/internal/pool"
	"github.com/baditaflorin/go_rouge_l/internal/ports"
)

// OptimizedTokenizer implements a tokenization strategy with a pre-computed
// ASCII decision table and buffer pooling. Output is identical to the
// DefaultTokenizer.
type OptimizedTokenizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiTable [128]byte

	// Reusable buffer for the lowercased bytes of the current token
	bytePool *pool.BufferPool
}

// Decision table values.
const (
	asciiKeep      = 0 // keep byte as is
	asciiDelimiter = 1 // whitespace, ends the current token
	asciiLower     = 2 // uppercase letter, convert to lowercase
)

// NewOptimizedTokenizer creates a new optimized tokenizer.
func NewOptimizedTokenizer() ports.Tokenizer {
	t := &OptimizedTokenizer{
		bytePool: pool.NewBufferPool(256),
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		switch {
		case unicode.IsSpace(r):
			t.asciiTable[i] = asciiDelimiter
		case unicode.IsUpper(r):
			t.asciiTable[i] = asciiLower
		default:
			t.asciiTable[i] = asciiKeep
		}
	}

	return t
}

// Tokenize splits the input text into lowercase whitespace-delimited tokens.
func (t *OptimizedTokenizer) Tokenize(text string) []string {
	// Fast path for empty strings
	if len(text) == 0 {
		return nil
	}

	// Check for ASCII-only string first (optimization)
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	if !asciiOnly {
		// Fall back to the rune-correct path for non-ASCII input.
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return strings.Fields(strings.ToLower(trimmed))
	}

	buffer := t.bytePool.Get()
	defer t.bytePool.Put(buffer)

	var tokens []string
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch t.asciiTable[b] {
		case asciiDelimiter:
			if len(*buffer) > 0 {
				tokens = append(tokens, string(*buffer))
				*buffer = (*buffer)[:0]
			}
		case asciiLower:
			*buffer = append(*buffer, b+('a'-'A'))
		default:
			*buffer = append(*buffer, b)
		}
	}
	if len(*buffer) > 0 {
		tokens = append(tokens, string(*buffer))
	}

	return tokens
}
