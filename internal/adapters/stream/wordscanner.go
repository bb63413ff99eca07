package stream

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/baditaflorin/go_rouge_l/internal/ports"
)

// Constants for stream tokenization
const (
	// DefaultBufferSize defines the initial scanner buffer size
	DefaultBufferSize = 64 * 1024 // 64KB

	// MaxTokenSize defines the largest single token the scanner accepts
	MaxTokenSize = 1024 * 1024 // 1MB

	// ContextCheckFrequency defines how often to check for context cancellation
	ContextCheckFrequency = 5000 // tokens
)

// WordScanner tokenizes text arriving from a reader, producing the same
// lowercase whitespace-delimited tokens as the string tokenizers.
type WordScanner struct {
	logger     ports.Logger
	bufferSize int
}

// ScannerConfig defines configuration for stream tokenization
type ScannerConfig struct {
	BufferSize int
}

// NewWordScanner creates a new stream tokenizer.
func NewWordScanner(logger ports.Logger, config ScannerConfig) *WordScanner {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}

	return &WordScanner{
		logger:     logger,
		bufferSize: config.BufferSize,
	}
}

// countingReader tracks how many bytes have been consumed from the
// underlying reader.
type countingReader struct {
	reader io.Reader
	count  int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	cr.count += int64(n)
	return n, err
}

// TokenizeStream reads the input to EOF and returns the normalized token
// sequence together with the number of bytes consumed.
func (ws *WordScanner) TokenizeStream(ctx context.Context, reader io.Reader) ([]string, int64, error) {
	cr := &countingReader{reader: reader}

	scanner := bufio.NewScanner(cr)
	scanner.Buffer(make([]byte, 0, ws.bufferSize), MaxTokenSize)
	scanner.Split(bufio.ScanWords)

	var tokens []string
	contextCheckCounter := 0

	for scanner.Scan() {
		// Periodically check context for cancellation
		contextCheckCounter++
		if contextCheckCounter >= ContextCheckFrequency {
			select {
			case <-ctx.Done():
				ws.logger.Warn("Stream tokenization cancelled by context", "error", ctx.Err())
				return tokens, cr.count, ctx.Err()
			default:
				// Continue processing
			}
			contextCheckCounter = 0
		}

		tokens = append(tokens, strings.ToLower(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		ws.logger.Error("Stream tokenization failed", "error", err)
		return tokens, cr.count, err
	}

	ws.logger.Debug("Stream tokenized",
		"tokens", len(tokens),
		"bytes", cr.count,
	)

	return tokens, cr.count, nil
}
