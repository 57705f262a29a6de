package report

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
)

func sampleSession() interviewModel.InterviewSession {
	return interviewModel.InterviewSession{
		Id:              "sess-1",
		Role:            "Backend Engineer",
		ExperienceLevel: "Senior",
		State:           interviewModel.StateEnded,
		Responses: []interviewModel.InterviewResponse{
			{QuestionText: "Which algorithm would you use?", SimilarityScore: 0.9, Timestamp: time.Now()},
			{
				QuestionText:    "Describe your system architecture.",
				SimilarityScore: 0.3,
				FollowUps: []interviewModel.InterviewResponse{
					{QuestionText: "Could you elaborate?", SimilarityScore: 0.4},
				},
			},
		},
	}
}

func TestExportSession(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir, nil)

	path, err := s.ExportSession(sampleSession())
	if err != nil {
		t.Fatalf("ExportSession failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "interview_") || !strings.HasSuffix(name, ".json") {
		t.Errorf("Unexpected export filename: %s", name)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading export: %v", err)
	}

	var export interviewModel.SessionExport
	if err := json.Unmarshal(raw, &export); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if export.Role != "Backend Engineer" || export.TotalQuestions != 2 {
		t.Errorf("Export content mismatch: %+v", export)
	}
	if math.Abs(export.AverageScore-0.6) > 1e-9 {
		t.Errorf("AverageScore got %f, want 0.6", export.AverageScore)
	}
	if len(export.Responses) != 2 || len(export.Responses[1].FollowUps) != 1 {
		t.Errorf("Response tree not preserved: %+v", export.Responses)
	}
}

func TestExportSession_WriteFailure(t *testing.T) {
	// A file where the directory should be makes MkdirAll fail.
	base := t.TempDir()
	blocked := filepath.Join(base, "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewService(filepath.Join(blocked, "results"), nil)
	if _, err := s.ExportSession(sampleSession()); err == nil {
		t.Error("Expected export error for unwritable directory")
	}
}

func TestBuildReport(t *testing.T) {
	s := NewService(t.TempDir(), nil)

	payload := s.BuildReport(sampleSession())

	if payload.SessionId != "sess-1" || payload.Role != "Backend Engineer" {
		t.Errorf("Payload header mismatch: %+v", payload)
	}
	if payload.Stats.TotalQuestions != 2 {
		t.Errorf("Stats not computed: %+v", payload.Stats)
	}
	if len(payload.Recommendations) == 0 {
		t.Error("Expected at least one recommendation")
	}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name         string
		stats        interviewModel.SessionStats
		wantContains []string
	}{
		{
			name:         "LowAccuracy",
			stats:        interviewModel.SessionStats{Accuracy: 0.4},
			wantContains: []string{"core concepts"},
		},
		{
			name:         "MidAccuracy",
			stats:        interviewModel.SessionStats{Accuracy: 0.6},
			wantContains: []string{"room for improvement"},
		},
		{
			name:         "HighAccuracy",
			stats:        interviewModel.SessionStats{Accuracy: 0.9},
			wantContains: []string{"Excellent performance"},
		},
		{
			name: "WeakCategory",
			stats: interviewModel.SessionStats{
				Accuracy:       0.8,
				CategoryScores: map[string][]float64{"Technical": {0.3, 0.4}},
			},
			wantContains: []string{"Technical skills need improvement"},
		},
		{
			name: "MiddlingCategory",
			stats: interviewModel.SessionStats{
				Accuracy:       0.8,
				CategoryScores: map[string][]float64{"Behavioral": {0.6}},
			},
			wantContains: []string{"Behavioral performance is decent"},
		},
		{
			name: "WeakFollowUps",
			stats: interviewModel.SessionStats{
				Accuracy:         0.8,
				TotalFollowUps:   2,
				AvgFollowUpScore: 0.3,
			},
			wantContains: []string{"follow-up questions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := strings.Join(Recommendations(tt.stats), "\n")
			for _, want := range tt.wantContains {
				if !strings.Contains(recs, want) {
					t.Errorf("Recommendations missing %q:\n%s", want, recs)
				}
			}
		})
	}
}
