package similarity

import "math"

// Feedback tier boundaries. A deterministic step function, not a learned
// model.
const (
	TierExcellent  = 0.8
	TierGood       = 0.6
	TierAcceptable = 0.5
	TierPartial    = 0.4
)

const (
	FeedbackExcellent  = "Excellent answer! You've demonstrated a strong understanding of the topic."
	FeedbackGood       = "Good answer! You've covered the main points well."
	FeedbackAcceptable = "Acceptable answer. You've addressed the key aspects, but there's room for more detail."
	FeedbackPartial    = "Your answer is partially correct, but missing some important aspects."
	FeedbackNeedsWork  = "Your answer needs improvement. Consider providing more specific details and examples."
)

// CosineSimilarity returns the directional closeness of two vectors in
// [-1, 1]. An empty or zero-norm vector yields 0.0 rather than an error:
// this is a degrade-to-neutral policy, not a true similarity measurement,
// and callers must treat the 0.0 accordingly.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func IsAcceptable(score, threshold float64) bool {
	return score >= threshold
}

// FeedbackTier maps a score to one of five fixed feedback strings.
func FeedbackTier(score float64, acceptable bool) string {
	if acceptable {
		switch {
		case score >= TierExcellent:
			return FeedbackExcellent
		case score >= TierGood:
			return FeedbackGood
		default:
			return FeedbackAcceptable
		}
	}
	if score >= TierPartial {
		return FeedbackPartial
	}
	return FeedbackNeedsWork
}
