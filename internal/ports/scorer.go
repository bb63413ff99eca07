package ports

import (
	"context"

	"github.com/baditaflorin/go_rouge_l/internal/core/domain"
)

// Scorer defines the interface for computing a ROUGE-L score between a
// candidate text and a reference text.
type Scorer interface {
	Score(ctx context.Context, candidate, reference string) domain.Result
}
