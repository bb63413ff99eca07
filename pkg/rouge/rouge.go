package rouge

import (
	"context"
	"io"

	"github.com/baditaflorin/go_rouge_l/internal/adapters/logger"
	"github.com/baditaflorin/go_rouge_l/internal/adapters/stream"
	"github.com/baditaflorin/go_rouge_l/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_rouge_l/internal/core/domain"
	core "github.com/baditaflorin/go_rouge_l/internal/core/rouge"
	"github.com/baditaflorin/go_rouge_l/internal/ports"
	"github.com/baditaflorin/go_rouge_l/internal/warmup"
	"github.com/baditaflorin/l"
)

// Scorer provides methods to compute the ROUGE-L metric between a candidate
// text and a reference text.
type Scorer struct {
	calculator *core.Calculator
	logger     ports.Logger
	tokenizer  ports.Tokenizer
	scanner    ports.StreamTokenizer
	warmed     bool
}

// ScorerOption defines a functional option for configuring the Scorer.
type ScorerOption func(*scorerConfig)

type scorerConfig struct {
	MaxTokens    int
	Logger       ports.Logger
	Tokenizer    ports.Tokenizer
	BufferSize   int
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithMaxTokens caps the token-sequence length of either input; 0 means no
// limit.
func WithMaxTokens(limit int) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.MaxTokens = limit
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithTokenizer sets a custom tokenizer.
func WithTokenizer(tok ports.Tokenizer) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.Tokenizer = tok
	}
}

// WithFastTokenizer sets the allocation-efficient tokenizer.
func WithFastTokenizer() ScorerOption {
	return func(cfg *scorerConfig) {
		tokFactory := tokenizer.NewTokenizerFactory()
		cfg.Tokenizer = tokFactory.CreateTokenizer(tokenizer.FastTokenizerType)
	}
}

// WithOptimizedTokenizer sets the pooled lookup-table tokenizer.
func WithOptimizedTokenizer() ScorerOption {
	return func(cfg *scorerConfig) {
		tokFactory := tokenizer.NewTokenizerFactory()
		cfg.Tokenizer = tokFactory.CreateTokenizer(tokenizer.OptimizedTokenizerType)
	}
}

// WithStreamBufferSize sets the scanner buffer size used by ScoreReaders.
func WithStreamBufferSize(size int) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.BufferSize = size
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Scorer instance.
func New(opts ...ScorerOption) (*Scorer, error) {
	defaultConfig := core.DefaultConfig()

	config := &scorerConfig{
		MaxTokens:    defaultConfig.MaxTokens,
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up tokenizer if not provided
	if config.Tokenizer == nil {
		config.Tokenizer = tokenizer.NewDefaultTokenizer()
	}

	// Create core calculator
	coreConfig := core.ScorerConfig{
		MaxTokens: config.MaxTokens,
	}
	calculator, err := core.NewCalculator(coreConfig, config.Logger, config.Tokenizer)
	if err != nil {
		return nil, err
	}

	scanner := stream.NewWordScanner(config.Logger, stream.ScannerConfig{
		BufferSize: config.BufferSize,
	})

	s := &Scorer{
		calculator: calculator,
		logger:     config.Logger,
		tokenizer:  config.Tokenizer,
		scanner:    scanner,
		warmed:     false,
	}

	// Perform warm-up if configured
	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// Score computes the ROUGE-L metric for the given candidate and reference
// texts.
func (s *Scorer) Score(ctx context.Context, candidate, reference string) domain.Result {
	return s.calculator.Score(ctx, candidate, reference)
}

// ScoreReaders computes the ROUGE-L metric for candidate and reference text
// arriving from readers, tokenizing each stream without first loading it
// into a string.
func (s *Scorer) ScoreReaders(ctx context.Context, candidate, reference io.Reader) (domain.Result, error) {
	candidateTokens, candidateBytes, err := s.scanner.TokenizeStream(ctx, candidate)
	if err != nil {
		return domain.Result{}, err
	}

	referenceTokens, referenceBytes, err := s.scanner.TokenizeStream(ctx, reference)
	if err != nil {
		return domain.Result{}, err
	}

	result := s.calculator.ScoreTokens(ctx, candidateTokens, referenceTokens)
	if result.Details != nil {
		result.Details["candidate_bytes"] = candidateBytes
		result.Details["reference_bytes"] = referenceBytes
	}
	return result, nil
}

// WarmUp performs system warm-up to optimize performance.
func (s *Scorer) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	warmupMgr.RegisterScorer(s.calculator)
	warmupMgr.RegisterTokenizer(s.tokenizer)

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}
