package similarity

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"SelfSimilarity", []float32{0.3, 0.5, 0.2}, []float32{0.3, 0.5, 0.2}, 1.0},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"Opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"ZeroVector", []float32{0, 0, 0}, []float32{1, 2, 3}, 0.0},
		{"EmptyVector", []float32{}, []float32{1, 2}, 0.0},
		{"LengthMismatch", []float32{1, 2}, []float32{1, 2, 3}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("CosineSimilarity got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestIsAcceptable(t *testing.T) {
	for _, score := range []float64{0.0, 0.3, 0.49999, 0.5, 0.7, 1.0} {
		if got, want := IsAcceptable(score, 0.5), score >= 0.5; got != want {
			t.Errorf("IsAcceptable(%f, 0.5) = %v; want %v", score, got, want)
		}
	}
}

func TestFeedbackTier(t *testing.T) {
	tests := []struct {
		score      float64
		acceptable bool
		expected   string
	}{
		{0.95, true, FeedbackExcellent},
		{0.8, true, FeedbackExcellent},
		{0.7, true, FeedbackGood},
		{0.55, true, FeedbackAcceptable},
		{0.45, false, FeedbackPartial},
		{0.4, false, FeedbackPartial},
		{0.1, false, FeedbackNeedsWork},
		{0.0, false, FeedbackNeedsWork},
	}

	for _, tt := range tests {
		if got := FeedbackTier(tt.score, tt.acceptable); got != tt.expected {
			t.Errorf("FeedbackTier(%f, %v) = %q; want %q", tt.score, tt.acceptable, got, tt.expected)
		}
	}
}
