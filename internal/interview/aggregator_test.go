package interview

import (
	"math"
	"testing"

	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		question string
		expected string
	}{
		{"Which algorithm would you pick for sorting?", "Technical"},
		{"How would you optimize this query?", "Problem Solving"},
		{"Describe the architecture of your last project.", "System Design"},
		{"Tell me about a challenge you faced with your team.", "Behavioral"},
		{"What motivates you?", "Other"},
		// "code" beats "approach" because Technical is checked first.
		{"What approach do you take to review code?", "Technical"},
	}

	for _, tt := range tests {
		if got := Categorize(tt.question, DefaultCategoryRules); got != tt.expected {
			t.Errorf("Categorize(%q) = %q; want %q", tt.question, got, tt.expected)
		}
	}
}

func TestCategorize_CustomRules(t *testing.T) {
	rules := []CategoryRule{
		{Name: "Databases", Keywords: []string{"sql", "index"}},
	}
	if got := Categorize("How does a SQL index work?", rules); got != "Databases" {
		t.Errorf("Categorize with custom rules = %q; want Databases", got)
	}
	if got := Categorize("Tell me about your team.", rules); got != CategoryOther {
		t.Errorf("Unmatched question = %q; want %q", got, CategoryOther)
	}
}

func TestComputeStats(t *testing.T) {
	session := interviewModel.InterviewSession{
		Responses: []interviewModel.InterviewResponse{
			{
				QuestionText:    "Which algorithm fits here?",
				SimilarityScore: 0.9,
			},
			{
				QuestionText:    "Describe your system architecture.",
				SimilarityScore: 0.3,
				FollowUps: []interviewModel.InterviewResponse{
					{QuestionText: "Could you elaborate?", SimilarityScore: 0.7},
				},
			},
			{
				QuestionText:    "What motivates you?",
				SimilarityScore: 0.5,
			},
		},
	}

	stats := ComputeStats(session, DefaultCategoryRules, 0.5)

	if stats.TotalQuestions != 3 {
		t.Errorf("TotalQuestions got %d, want 3", stats.TotalQuestions)
	}
	if stats.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers got %d, want 2", stats.CorrectAnswers)
	}
	if math.Abs(stats.Accuracy-2.0/3.0) > 1e-9 {
		t.Errorf("Accuracy got %f", stats.Accuracy)
	}
	if math.Abs(stats.AverageScore-(0.9+0.3+0.5)/3) > 1e-9 {
		t.Errorf("AverageScore got %f", stats.AverageScore)
	}
	if stats.CategoryCounts["Technical"] != 1 || stats.CategoryCounts["System Design"] != 1 || stats.CategoryCounts["Other"] != 1 {
		t.Errorf("CategoryCounts got %v", stats.CategoryCounts)
	}
	if stats.TotalFollowUps != 1 || stats.QuestionsWithFollowUps != 1 {
		t.Errorf("Follow-up counts got %d/%d, want 1/1", stats.TotalFollowUps, stats.QuestionsWithFollowUps)
	}
	if math.Abs(stats.AvgFollowUpScore-0.7) > 1e-9 {
		t.Errorf("AvgFollowUpScore got %f", stats.AvgFollowUpScore)
	}
}

func TestComputeStats_EmptySession(t *testing.T) {
	stats := ComputeStats(interviewModel.InterviewSession{}, DefaultCategoryRules, 0.5)

	if stats.TotalQuestions != 0 || stats.AverageScore != 0 || stats.Accuracy != 0 {
		t.Errorf("Empty session stats should be zero: %+v", stats)
	}
}
