package rouge

import (
	"context"
	"math"
	"testing"

	"github.com/baditaflorin/go_rouge_l/internal/adapters/tokenizer"
)

// nopLogger discards all log output in tests.
type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Close() error                                   { return nil }

func newTestCalculator(t *testing.T, config ScorerConfig) *Calculator {
	t.Helper()
	calc, err := NewCalculator(config, nopLogger{}, tokenizer.NewDefaultTokenizer())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestScoreScenarios(t *testing.T) {
	const tolerance = 1e-4

	tests := []struct {
		name      string
		candidate string
		reference string
		fMeasure  float64
		precision float64
		recall    float64
		lcs       int
	}{
		{
			name:      "Overlapping sentences",
			candidate: "The quick brown fox jumps over the lazy dog",
			reference: "A quick brown fox jumps over a lazy dog",
			fMeasure:  0.7778,
			precision: 0.7778,
			recall:    0.7778,
			lcs:       7,
		},
		{
			name:      "Identical sentences",
			candidate: "the cat sat on the mat",
			reference: "the cat sat on the mat",
			fMeasure:  1.0,
			precision: 1.0,
			recall:    1.0,
			lcs:       6,
		},
		{
			name:      "No overlap",
			candidate: "a b c",
			reference: "x y z",
			fMeasure:  0.0,
			precision: 0.0,
			recall:    0.0,
			lcs:       0,
		},
		{
			name:      "Reversed order",
			candidate: "a b c d",
			reference: "d c b a",
			fMeasure:  0.25,
			precision: 0.25,
			recall:    0.25,
			lcs:       1,
		},
		{
			name:      "Case is normalized",
			candidate: "Hello World",
			reference: "hello world",
			fMeasure:  1.0,
			precision: 1.0,
			recall:    1.0,
			lcs:       2,
		},
		{
			name:      "Asymmetric lengths",
			candidate: "the cat",
			reference: "the cat sat on the mat",
			fMeasure:  0.5,
			precision: 1.0,
			recall:    2.0 / 6.0,
			lcs:       2,
		},
	}

	calc := newTestCalculator(t, DefaultConfig())
	ctx := context.Background()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.Score(ctx, tc.candidate, tc.reference)

			if math.Abs(result.FMeasure-tc.fMeasure) > tolerance {
				t.Errorf("FMeasure = %v, want %v", result.FMeasure, tc.fMeasure)
			}
			if math.Abs(result.Precision-tc.precision) > tolerance {
				t.Errorf("Precision = %v, want %v", result.Precision, tc.precision)
			}
			if math.Abs(result.Recall-tc.recall) > tolerance {
				t.Errorf("Recall = %v, want %v", result.Recall, tc.recall)
			}
			if result.LCSLength != tc.lcs {
				t.Errorf("LCSLength = %d, want %d", result.LCSLength, tc.lcs)
			}
			if result.Name != MetricName {
				t.Errorf("Name = %q, want %q", result.Name, MetricName)
			}
		})
	}
}

func TestScoreEmptyInputs(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())
	ctx := context.Background()

	tests := []struct {
		name      string
		candidate string
		reference string
	}{
		{"Empty candidate", "", "non-empty text"},
		{"Empty reference", "non-empty text", ""},
		{"Both empty", "", ""},
		{"Whitespace-only candidate", "   \t\n  ", "non-empty text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.Score(ctx, tc.candidate, tc.reference)
			if result.FMeasure != 0 || result.Precision != 0 || result.Recall != 0 {
				t.Errorf("expected zero triple, got F=%v P=%v R=%v",
					result.FMeasure, result.Precision, result.Recall)
			}
			if result.Details["error"] == nil {
				t.Error("expected a diagnostic in Details")
			}
		})
	}
}

func TestScoreDeterminism(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())
	ctx := context.Background()

	candidate := `The API returned {"status": 200, "message": "OK"} with user data`
	reference := `API response was {"status": 200, "message": "OK"} containing user information`

	first := calc.Score(ctx, candidate, reference)
	second := calc.Score(ctx, candidate, reference)

	if first.FMeasure != second.FMeasure ||
		first.Precision != second.Precision ||
		first.Recall != second.Recall {
		t.Errorf("repeated calls disagree: %+v vs %+v", first, second)
	}
}

func TestScoreSwappedArguments(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())
	ctx := context.Background()

	candidate := "the cat sat"
	reference := "the cat sat on the mat"

	forward := calc.Score(ctx, candidate, reference)
	backward := calc.Score(ctx, reference, candidate)

	// The LCS is symmetric, so swapping the arguments swaps precision and
	// recall and leaves the F-measure unchanged.
	if forward.Precision != backward.Recall || forward.Recall != backward.Precision {
		t.Errorf("precision/recall did not swap: %+v vs %+v", forward, backward)
	}
	if math.Abs(forward.FMeasure-backward.FMeasure) > 1e-12 {
		t.Errorf("FMeasure changed under swap: %v vs %v", forward.FMeasure, backward.FMeasure)
	}
	if forward.LCSLength != backward.LCSLength {
		t.Errorf("LCSLength changed under swap: %d vs %d", forward.LCSLength, backward.LCSLength)
	}
}

func TestScoreHarmonicMeanLaw(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())
	ctx := context.Background()

	pairs := [][2]string{
		{"the quick brown fox", "the slow brown fox"},
		{"a b c d e", "a c e"},
		{"one two three", "three two one"},
		{"hello world", "hello world"},
	}

	for _, pair := range pairs {
		result := calc.Score(ctx, pair[0], pair[1])

		if result.Precision < 0 || result.Precision > 1 ||
			result.Recall < 0 || result.Recall > 1 ||
			result.FMeasure < 0 || result.FMeasure > 1 {
			t.Errorf("metrics out of [0,1]: %+v", result)
		}

		if result.Precision+result.Recall > 0 {
			want := 2 * result.Precision * result.Recall / (result.Precision + result.Recall)
			if math.Abs(result.FMeasure-want) > 1e-9 {
				t.Errorf("FMeasure = %v, want harmonic mean %v", result.FMeasure, want)
			}
		} else if result.FMeasure != 0 {
			t.Errorf("FMeasure = %v, want 0 when precision+recall == 0", result.FMeasure)
		}
	}
}

func TestScoreMaxTokensGuard(t *testing.T) {
	calc := newTestCalculator(t, ScorerConfig{MaxTokens: 3})
	ctx := context.Background()

	result := calc.Score(ctx, "a b c d e", "a b c")
	if result.FMeasure != 0 {
		t.Errorf("expected zero result for over-limit input, got %+v", result)
	}
	if result.Details["error"] != "input exceeds max tokens" {
		t.Errorf("unexpected diagnostic: %v", result.Details["error"])
	}

	// At the limit the computation proceeds.
	result = calc.Score(ctx, "a b c", "a b c")
	if result.FMeasure != 1.0 {
		t.Errorf("expected full score at the limit, got %+v", result)
	}
}

func TestScoreCancelledContext(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := calc.Score(ctx, "a b c", "a b c")
	if result.FMeasure != 0 {
		t.Errorf("expected zero result for cancelled context, got %+v", result)
	}
	if result.Details["error"] != "computation cancelled" {
		t.Errorf("unexpected diagnostic: %v", result.Details["error"])
	}
}

func TestNewCalculatorRejectsInvalidConfig(t *testing.T) {
	_, err := NewCalculator(ScorerConfig{MaxTokens: -1}, nopLogger{}, tokenizer.NewDefaultTokenizer())
	if err == nil {
		t.Error("expected an error for negative MaxTokens")
	}
}
