package tokenizer

import (
	"github.com/baditaflorin/go_rouge_l/internal/ports"
)

// TokenizerFactory creates the appropriate tokenizer based on performance
// requirements. All tokenizers produce identical output.
type TokenizerFactory struct{}

// NewTokenizerFactory creates a new tokenizer factory
func NewTokenizerFactory() *TokenizerFactory {
	return &TokenizerFactory{}
}

// Type of tokenizer to create
type TokenizerType int

const (
	// DefaultTokenizerType is the straightforward strings.Fields tokenizer
	DefaultTokenizerType TokenizerType = iota
	// OptimizedTokenizerType uses a precomputed ASCII table and buffer pooling
	OptimizedTokenizerType
	// FastTokenizerType avoids copying tokens that are already lowercase
	FastTokenizerType
)

// CreateTokenizer creates a tokenizer of the specified type
func (f *TokenizerFactory) CreateTokenizer(tokenizerType TokenizerType) ports.Tokenizer {
	switch tokenizerType {
	case OptimizedTokenizerType:
		return NewOptimizedTokenizer()
	case FastTokenizerType:
		return NewFastTokenizer()
	default:
		return NewDefaultTokenizer()
	}
}
