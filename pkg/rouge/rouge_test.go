package rouge

import (
	"context"
	"math"
	"strings"
	"testing"
)

func TestScorerWithDefaults(t *testing.T) {
	const tolerance = 1e-4

	scorer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name      string
		candidate string
		reference string
		fMeasure  float64
	}{
		{
			name:      "Overlapping sentences",
			candidate: "The quick brown fox jumps over the lazy dog",
			reference: "A quick brown fox jumps over a lazy dog",
			fMeasure:  0.7778,
		},
		{
			name:      "Identical sentences",
			candidate: "the cat sat on the mat",
			reference: "the cat sat on the mat",
			fMeasure:  1.0,
		},
		{
			name:      "No overlap",
			candidate: "a b c",
			reference: "x y z",
			fMeasure:  0.0,
		},
		{
			name:      "Empty candidate",
			candidate: "",
			reference: "non-empty text",
			fMeasure:  0.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := scorer.Score(ctx, tc.candidate, tc.reference)
			if math.Abs(result.FMeasure-tc.fMeasure) > tolerance {
				t.Errorf("FMeasure = %v, want %v, details: %v",
					result.FMeasure, tc.fMeasure, result.Details)
			}
		})
	}
}

func TestScorerTokenizerOptionsAgree(t *testing.T) {
	ctx := context.Background()
	candidate := `Error: {"code": 404, "error": "Not Found"} occurred at 2024-01-15`
	reference := `Error occurred: {"code": 404, "error": "Not Found"} on date 2024-01-15`

	defaultScorer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fastScorer, err := New(WithFastTokenizer())
	if err != nil {
		t.Fatalf("New(WithFastTokenizer): %v", err)
	}
	optimizedScorer, err := New(WithOptimizedTokenizer())
	if err != nil {
		t.Fatalf("New(WithOptimizedTokenizer): %v", err)
	}

	want := defaultScorer.Score(ctx, candidate, reference)
	for name, scorer := range map[string]*Scorer{
		"fast":      fastScorer,
		"optimized": optimizedScorer,
	} {
		got := scorer.Score(ctx, candidate, reference)
		if got.FMeasure != want.FMeasure || got.LCSLength != want.LCSLength {
			t.Errorf("%s tokenizer changed the score: %+v vs %+v", name, got, want)
		}
	}
}

func TestScorerMaxTokensOption(t *testing.T) {
	scorer, err := New(WithMaxTokens(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := scorer.Score(context.Background(), "a b c", "a b c")
	if result.FMeasure != 0 {
		t.Errorf("expected zero result above the token limit, got %+v", result)
	}
}

func TestScorerRejectsInvalidOptions(t *testing.T) {
	if _, err := New(WithMaxTokens(-1)); err == nil {
		t.Error("expected an error for negative MaxTokens")
	}
}

func TestScoreReadersMatchesScore(t *testing.T) {
	scorer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	candidate := "Machine learning is a subset of artificial intelligence"
	reference := "Machine learning forms part of artificial intelligence systems"

	direct := scorer.Score(ctx, candidate, reference)
	streamed, err := scorer.ScoreReaders(ctx, strings.NewReader(candidate), strings.NewReader(reference))
	if err != nil {
		t.Fatalf("ScoreReaders: %v", err)
	}

	if direct.FMeasure != streamed.FMeasure ||
		direct.Precision != streamed.Precision ||
		direct.Recall != streamed.Recall {
		t.Errorf("stream scoring diverged: %+v vs %+v", streamed, direct)
	}

	if streamed.Details["candidate_bytes"] != int64(len(candidate)) {
		t.Errorf("candidate_bytes = %v, want %d",
			streamed.Details["candidate_bytes"], len(candidate))
	}
}
