package ports

import (
	"context"
	"io"
)

// StreamTokenizer defines the interface for tokenizing text arriving from a
// reader, for callers that score file or network inputs without first
// loading them into a string.
type StreamTokenizer interface {
	// TokenizeStream reads the input to EOF and returns the normalized token
	// sequence together with the number of bytes consumed.
	TokenizeStream(ctx context.Context, reader io.Reader) ([]string, int64, error)
}
