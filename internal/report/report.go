package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/interviewcoach/CoachAPI/internal/interview"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

// Payload is the report served as JSON for an external renderer. No PDF or
// chart generation happens here.
type Payload struct {
	SessionId       string                             `json:"session_id"`
	Role            string                             `json:"role"`
	ExperienceLevel string                             `json:"experience_level"`
	GeneratedAt     time.Time                          `json:"generated_at"`
	Stats           interviewModel.SessionStats        `json:"stats"`
	Responses       []interviewModel.InterviewResponse `json:"responses"`
	Recommendations []string                           `json:"recommendations"`
}

// Service builds report payloads and writes session exports. It satisfies
// interview.Exporter.
type Service interface {
	BuildReport(session interviewModel.InterviewSession) Payload
	ExportSession(session interviewModel.InterviewSession) (string, error)
}

type service struct {
	resultsDir string
	rules      []interview.CategoryRule
	threshold  float64
	logger     *logger_i.Logger
}

// NewService constructor
func NewService(resultsDir string, rules []interview.CategoryRule) Service {
	if len(rules) == 0 {
		rules = interview.DefaultCategoryRules
	}
	return &service{
		resultsDir: resultsDir,
		rules:      rules,
		threshold:  config.SimilarityThreshold,
		logger:     logger_i.NewLogger("Report Service :"),
	}
}

func (s *service) BuildReport(session interviewModel.InterviewSession) Payload {
	stats := interview.ComputeStats(session, s.rules, s.threshold)
	return Payload{
		SessionId:       session.Id,
		Role:            session.Role,
		ExperienceLevel: session.ExperienceLevel,
		GeneratedAt:     time.Now(),
		Stats:           stats,
		Responses:       session.Responses,
		Recommendations: Recommendations(stats),
	}
}

// ExportSession writes one JSON file per ended session under the results
// directory and returns the file path. Write failures surface to the caller;
// the in-memory session is untouched either way.
func (s *service) ExportSession(session interviewModel.InterviewSession) (string, error) {
	if err := os.MkdirAll(s.resultsDir, 0755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}

	stats := interview.ComputeStats(session, s.rules, s.threshold)
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(s.resultsDir, fmt.Sprintf("interview_%s.json", timestamp))

	export := interviewModel.SessionExport{
		Timestamp:       timestamp,
		Role:            session.Role,
		ExperienceLevel: session.ExperienceLevel,
		Responses:       session.Responses,
		TotalQuestions:  stats.TotalQuestions,
		AverageScore:    stats.AverageScore,
	}

	raw, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling session export: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("writing session export: %w", err)
	}

	s.logger.Info("Interview results saved", "path", path)
	return path, nil
}

// Recommendations derives advice strings from aggregate performance. The
// thresholds mirror the feedback tiers: 50% accuracy is passing, 75% is
// strong, category averages below 0.5 and 0.7 mark weak and middling areas.
func Recommendations(stats interviewModel.SessionStats) []string {
	recommendations := []string{}

	accuracyPct := stats.Accuracy * 100
	switch {
	case accuracyPct < 50:
		recommendations = append(recommendations,
			"Focus on improving your overall understanding of core concepts. Consider reviewing fundamental topics in your field.")
	case accuracyPct < 75:
		recommendations = append(recommendations,
			"Your performance is good, but there's room for improvement. Focus on areas where you scored below average.")
	default:
		recommendations = append(recommendations,
			"Excellent performance! Continue practicing to maintain your high standards and focus on advanced topics.")
	}

	categories := make([]string, 0, len(stats.CategoryScores))
	for category := range stats.CategoryScores {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		scores := stats.CategoryScores[category]
		if len(scores) == 0 {
			continue
		}
		var sum float64
		for _, score := range scores {
			sum += score
		}
		avg := sum / float64(len(scores))

		switch {
		case avg < 0.5:
			recommendations = append(recommendations,
				fmt.Sprintf("Your %s skills need improvement. Consider practicing more %s questions and reviewing related concepts.",
					category, strings.ToLower(category)))
		case avg < 0.7:
			recommendations = append(recommendations,
				fmt.Sprintf("Your %s performance is decent but could be better. Focus on understanding the underlying principles better.",
					category))
		}
	}

	if stats.TotalFollowUps > 0 && stats.AvgFollowUpScore < 0.5 {
		recommendations = append(recommendations,
			"You need to improve your ability to handle follow-up questions. Practice thinking on your feet and providing detailed explanations.")
	}

	return recommendations
}
