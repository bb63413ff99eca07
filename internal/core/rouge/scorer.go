package rouge

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_rouge_l/internal/core/domain"
	"github.com/baditaflorin/go_rouge_l/internal/ports"
)

// MetricName identifies the metric in Result.Name and log entries.
const MetricName = "rouge_l"

// ScorerConfig holds configuration for the ROUGE-L scorer.
type ScorerConfig struct {
	// MaxTokens caps the token-sequence length of either input. The LCS
	// table grows with the product of the two token counts, so callers
	// scoring untrusted or very long inputs can bound memory and time here.
	// Zero means no limit.
	MaxTokens int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() ScorerConfig {
	return ScorerConfig{
		MaxTokens: 0,
	}
}

// Validate checks if the configuration is valid.
func (c ScorerConfig) Validate() error {
	if c.MaxTokens < 0 {
		return errors.New("maxTokens must not be negative")
	}
	return nil
}

// Calculator implements the ROUGE-L score calculation.
type Calculator struct {
	config    ScorerConfig
	logger    ports.Logger
	tokenizer ports.Tokenizer
}

// NewCalculator creates a new ROUGE-L calculator.
func NewCalculator(config ScorerConfig, logger ports.Logger, tokenizer ports.Tokenizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config:    config,
		logger:    logger,
		tokenizer: tokenizer,
	}, nil
}

// Score computes the ROUGE-L metric triple for the given candidate and
// reference texts. Degenerate inputs (either side tokenizing to nothing)
// yield an all-zero result rather than an error.
func (c *Calculator) Score(ctx context.Context, candidate, reference string) domain.Result {
	c.logger.Debug("Starting ROUGE-L computation",
		"candidate", candidate,
		"reference", reference,
	)

	candidateTokens := c.tokenizer.Tokenize(candidate)
	referenceTokens := c.tokenizer.Tokenize(reference)

	c.logger.Debug("Tokenized inputs",
		"candidate_tokens", len(candidateTokens),
		"reference_tokens", len(referenceTokens),
	)

	return c.ScoreTokens(ctx, candidateTokens, referenceTokens)
}

// ScoreTokens computes the ROUGE-L metric triple over already-tokenized
// inputs. Callers that tokenize a stream themselves enter here.
func (c *Calculator) ScoreTokens(ctx context.Context, candidateTokens, referenceTokens []string) domain.Result {
	details := make(map[string]interface{})

	// Check for context cancellation before building the DP table.
	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Zero(MetricName, details)
	default:
		// continue
	}

	if len(candidateTokens) == 0 || len(referenceTokens) == 0 {
		c.logger.Warn("Empty token sequence, returning zero result",
			"candidate_tokens", len(candidateTokens),
			"reference_tokens", len(referenceTokens),
		)
		details["error"] = "empty token sequence"
		details["candidate_length"] = len(candidateTokens)
		details["reference_length"] = len(referenceTokens)
		return domain.Zero(MetricName, details)
	}

	if c.config.MaxTokens > 0 &&
		(len(candidateTokens) > c.config.MaxTokens || len(referenceTokens) > c.config.MaxTokens) {
		c.logger.Error("Input exceeds configured token limit",
			"max_tokens", c.config.MaxTokens,
			"candidate_tokens", len(candidateTokens),
			"reference_tokens", len(referenceTokens),
		)
		details["error"] = "input exceeds max tokens"
		details["max_tokens"] = c.config.MaxTokens
		return domain.Zero(MetricName, details)
	}

	lcs := lcsLength(candidateTokens, referenceTokens)

	precision := float64(lcs) / float64(len(candidateTokens))
	recall := float64(lcs) / float64(len(referenceTokens))

	var fMeasure float64
	if precision+recall > 0 {
		fMeasure = 2 * precision * recall / (precision + recall)
	}

	details["lcs_length"] = lcs
	details["candidate_length"] = len(candidateTokens)
	details["reference_length"] = len(referenceTokens)

	c.logger.Debug("Computed ROUGE-L",
		"f_measure", fMeasure,
		"precision", precision,
		"recall", recall,
		"lcs_length", lcs,
	)

	return domain.Result{
		Name:            MetricName,
		FMeasure:        fMeasure,
		Precision:       precision,
		Recall:          recall,
		LCSLength:       lcs,
		CandidateLength: len(candidateTokens),
		ReferenceLength: len(referenceTokens),
		Details:         details,
	}
}
