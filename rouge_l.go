// rouge_l.go
// Package rougel computes the ROUGE-L text-similarity metric between a
// candidate string and a reference string. The metric tokenizes both inputs
// into lowercase whitespace-delimited words, computes the length of their
// Longest Common Subsequence (LCS), and derives:
//
//	precision = lcs / |candidateTokens|
//	recall    = lcs / |referenceTokens|
//	fMeasure  = 2 * precision * recall / (precision + recall)
//
// When either side tokenizes to nothing the result is the zero triple; no
// input is an error. This version uses the functional options pattern to
// allow configuration of parameters like the token limit and logging.
package rougel

import (
	"strings"

	"github.com/baditaflorin/l"
)

// tokenize trims the input, lowercases it and splits it on runs of
// whitespace. Punctuation and markup are kept verbatim inside their tokens;
// whitespace is the only delimiter.
func tokenize(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Fields(strings.ToLower(text))
}

// lcsLength computes the length of the longest common subsequence of two
// token sequences using the classical dynamic-programming table.
func lcsLength(seq1, seq2 []string) int {
	m := len(seq1)
	n := len(seq2)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if seq1[i-1] == seq2[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	return dp[m][n]
}

// Result holds the outcome of the ROUGE-L computation.
type Result struct {
	// Name of the metric.
	Name string
	// FMeasure is the harmonic mean of precision and recall, in [0, 1].
	FMeasure float64
	// Precision is the fraction of candidate tokens in the LCS.
	Precision float64
	// Recall is the fraction of reference tokens in the LCS.
	Recall float64
	// LCSLength is the longest-common-subsequence length in tokens.
	LCSLength int
	// CandidateLength is the token count of the candidate text.
	CandidateLength int
	// ReferenceLength is the token count of the reference text.
	ReferenceLength int
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// Config holds configuration options for the ROUGE-L metric.
type Config struct {
	// MaxTokens caps the token-sequence length of either input; 0 means no
	// limit. The DP table grows with the product of the token counts, so
	// callers scoring untrusted inputs can bound memory here.
	MaxTokens int
	// Logger for tracing computation steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the metric.
type Option func(*Config)

// WithMaxTokens sets a custom token limit.
func WithMaxTokens(limit int) Option {
	return func(cfg *Config) {
		cfg.MaxTokens = limit
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// RougeL provides methods to compute the ROUGE-L metric using configurable
// parameters.
type RougeL struct {
	config Config
}

// New creates a new RougeL with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) *RougeL {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	// If no logger is set, create a default logger.
	if cfg.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			panic(err)
		}
		cfg.Logger = logger
	}
	return &RougeL{config: cfg}
}

// Score calculates the ROUGE-L metric for the given candidate and reference
// texts using the configured parameters. It logs key steps of the
// computation. If either text contains zero tokens, it returns the zero
// triple rather than an error.
func (r *RougeL) Score(candidate, reference string) Result {
	r.config.Logger.Debug("Starting ROUGE-L computation",
		"candidate", candidate,
		"reference", reference,
	)

	details := make(map[string]interface{})

	candidateTokens := tokenize(candidate)
	referenceTokens := tokenize(reference)
	r.config.Logger.Debug("Tokenized inputs",
		"candidate_tokens", len(candidateTokens),
		"reference_tokens", len(referenceTokens),
	)

	// No overlap is measurable against an empty side.
	if len(candidateTokens) == 0 || len(referenceTokens) == 0 {
		r.config.Logger.Warn("Empty token sequence, returning zero result",
			"candidate_tokens", len(candidateTokens),
			"reference_tokens", len(referenceTokens),
		)
		details["error"] = "empty token sequence"
		return Result{
			Name:    "rouge_l",
			Details: details,
		}
	}

	if r.config.MaxTokens > 0 &&
		(len(candidateTokens) > r.config.MaxTokens || len(referenceTokens) > r.config.MaxTokens) {
		r.config.Logger.Error("Input exceeds configured token limit",
			"max_tokens", r.config.MaxTokens,
			"candidate_tokens", len(candidateTokens),
			"reference_tokens", len(referenceTokens),
		)
		details["error"] = "input exceeds max tokens"
		details["max_tokens"] = r.config.MaxTokens
		return Result{
			Name:    "rouge_l",
			Details: details,
		}
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

	r.config.Logger.Debug("Computed ROUGE-L",
		"f_measure", fMeasure,
		"precision", precision,
		"recall", recall,
		"lcs_length", lcs,
	)

	return Result{
		Name:            "rouge_l",
		FMeasure:        fMeasure,
		Precision:       precision,
		Recall:          recall,
		LCSLength:       lcs,
		CandidateLength: len(candidateTokens),
		ReferenceLength: len(referenceTokens),
		Details:         details,
	}
}

// ScoreWithDefaults computes the ROUGE-L metric with the default
// configuration.
func ScoreWithDefaults(candidate, reference string) Result {
	return New().Score(candidate, reference)
}
