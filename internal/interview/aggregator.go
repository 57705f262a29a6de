package interview

import (
	"strings"

	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
)

// CategoryRule buckets a question by keyword. Rules are checked in order and
// the first match wins, so broader rules belong later in the list.
type CategoryRule struct {
	Name     string
	Keywords []string
}

const CategoryOther = "Other"

var DefaultCategoryRules = []CategoryRule{
	{Name: "Technical", Keywords: []string{"algorithm", "data structure", "code", "programming"}},
	{Name: "Problem Solving", Keywords: []string{"solve", "approach", "optimize", "efficiency"}},
	{Name: "System Design", Keywords: []string{"design", "architecture", "system", "scalability"}},
	{Name: "Behavioral", Keywords: []string{"experience", "team", "challenge", "situation"}},
}

// Categorize returns the first rule whose keyword appears in the question
// text, or CategoryOther.
func Categorize(questionText string, rules []CategoryRule) string {
	lower := strings.ToLower(questionText)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Name
			}
		}
	}
	return CategoryOther
}

// ComputeStats aggregates a session's response tree. Pure over its inputs and
// recomputed on every call; nothing here caches.
func ComputeStats(session interviewModel.InterviewSession, rules []CategoryRule, threshold float64) interviewModel.SessionStats {
	stats := interviewModel.SessionStats{
		CategoryCounts: map[string]int{},
		CategoryScores: map[string][]float64{},
		Scores:         []float64{},
	}

	var followUpScores []float64

	for _, resp := range session.Responses {
		stats.TotalQuestions++
		stats.Scores = append(stats.Scores, resp.SimilarityScore)
		if resp.SimilarityScore >= threshold {
			stats.CorrectAnswers++
		}

		category := Categorize(resp.QuestionText, rules)
		stats.CategoryCounts[category]++
		stats.CategoryScores[category] = append(stats.CategoryScores[category], resp.SimilarityScore)

		if len(resp.FollowUps) > 0 {
			stats.QuestionsWithFollowUps++
		}
		followUpScores = append(followUpScores, collectFollowUpScores(resp.FollowUps)...)
	}

	stats.TotalFollowUps = len(followUpScores)
	stats.AvgFollowUpScore = mean(followUpScores)
	stats.AverageScore = mean(stats.Scores)
	if stats.TotalQuestions > 0 {
		stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions)
	}
	return stats
}

func collectFollowUpScores(followUps []interviewModel.InterviewResponse) []float64 {
	var scores []float64
	for _, f := range followUps {
		scores = append(scores, f.SimilarityScore)
		scores = append(scores, collectFollowUpScores(f.FollowUps)...)
	}
	return scores
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
