package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_rouge_l/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger     ports.Logger
	scorers    []ports.Scorer
	tokenizers []ports.Tokenizer
	config     WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterScorer adds a scorer to be warmed up
func (wm *Manager) RegisterScorer(scorer ports.Scorer) {
	wm.scorers = append(wm.scorers, scorer)
}

// RegisterTokenizer adds a tokenizer to be warmed up
func (wm *Manager) RegisterTokenizer(tok ports.Tokenizer) {
	wm.tokenizers = append(wm.tokenizers, tok)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.scorers)+len(wm.tokenizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpTokenizers(warmupCtx)
	wm.warmUpScorers(warmupCtx)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpTokenizers runs warmup for all registered tokenizers
func (wm *Manager) warmUpTokenizers(ctx context.Context) {
	if len(wm.tokenizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up tokenizers", "count", len(wm.tokenizers))

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				for _, tok := range wm.tokenizers {
					_ = tok.Tokenize(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpScorers runs warmup for all registered scorers
func (wm *Manager) warmUpScorers(ctx context.Context) {
	if len(wm.scorers) == 0 {
		return
	}

	wm.logger.Debug("Warming up scorers", "count", len(wm.scorers))

	// Generate candidate texts of different overlap levels
	reference := generateSampleText(wm.config.SampleTextSize)
	similar := generateRewordedText(reference, 0.1)   // 10% reworded
	different := generateRewordedText(reference, 0.5) // 50% reworded

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				for _, scorer := range wm.scorers {
					// Alternate between different overlap levels
					switch j % 3 {
					case 0:
						_ = scorer.Score(ctx, reference, reference) // Identical
					case 1:
						_ = scorer.Score(ctx, similar, reference) // Similar
					default:
						_ = scorer.Score(ctx, different, reference) // Different
					}
				}
			}
		}()
	}

	wg.Wait()
}

// generateSampleText creates sample text of the specified size
func generateSampleText(size int) string {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"hello", "world", "lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor", "incididunt",
		"ut", "labore", "et", "dolore", "magna", "aliqua",
	}

	var sb strings.Builder
	wordsNeeded := size / 5 // Assuming average word length of 5

	for i := 0; i < wordsNeeded; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	result := sb.String()
	if len(result) > size {
		return result[:size]
	}
	return result
}

// generateRewordedText creates a text that shares tokens with the original
// except for the specified fraction of replaced words
func generateRewordedText(original string, diffRatio float64) string {
	words := strings.Fields(original)
	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"replaced", "modified", "changed", "altered", "updated",
		"different", "unique", "new", "fresh", "novel",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)

	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}

	return strings.Join(newWords, " ")
}
