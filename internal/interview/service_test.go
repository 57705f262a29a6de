package interview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/internal/rag/similarity"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
)

// --- Mocks ---

type mockRetriever struct {
	onRetrieve func(ctx context.Context, query string, k int, filter map[string]string) []string
}

func (m *mockRetriever) IngestResume(ctx context.Context, job jobModel.Job) jobModel.Job {
	return job
}
func (m *mockRetriever) Search(ctx context.Context, coll string, query string, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error) {
	return nil, nil
}
func (m *mockRetriever) RetrieveContext(ctx context.Context, query string, k int, filter map[string]string) []string {
	if m.onRetrieve != nil {
		return m.onRetrieve(ctx, query, k, filter)
	}
	return []string{}
}

type mockLLM struct {
	onComplete func(ctx context.Context, system string, user string) (string, error)
}

func (m *mockLLM) Complete(ctx context.Context, system string, user string) (string, error) {
	if m.onComplete != nil {
		return m.onComplete(ctx, system, user)
	}
	return fmt.Sprintf("%s What does your ideal architecture look like?\n%s A layered architecture with clear boundaries.", questionMarker, expectedAnswerMarker), nil
}

// scoredEmbedder maps answer texts to vectors whose cosine similarity with
// the expected-answer vector (1, 0) equals the configured score.
type scoredEmbedder struct {
	scores map[string]float64
	err    error
}

func (m *scoredEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	if score, ok := m.scores[text]; ok {
		return []float32{float32(score), float32(math.Sqrt(1 - score*score))}, nil
	}
	return []float32{1, 0}, nil
}

func (m *scoredEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	return make([][]float32, len(chunks)), nil
}

type mockExporter struct {
	calls int
	err   error
}

func (m *mockExporter) ExportSession(session interviewModel.InterviewSession) (string, error) {
	m.calls++
	return "data/interview_results/interview_test.json", m.err
}

func newTestService(llm *mockLLM, embedder *scoredEmbedder, exporter *mockExporter) Service {
	if exporter == nil {
		return NewService(&mockRetriever{}, llm, embedder, nil, nil)
	}
	return NewService(&mockRetriever{}, llm, embedder, exporter, nil)
}

// --- Tests ---

func TestStartInterview(t *testing.T) {
	s := newTestService(&mockLLM{}, &scoredEmbedder{}, nil)

	session := s.StartInterview(context.Background(), "Backend Engineer", "Senior")

	if session.State != interviewModel.StateAwaitingAnswer {
		t.Errorf("State got %s, want %s", session.State, interviewModel.StateAwaitingAnswer)
	}
	if session.QuestionCounter != 1 {
		t.Errorf("QuestionCounter got %d, want 1", session.QuestionCounter)
	}
	if session.FollowUpFor != -1 {
		t.Errorf("FollowUpFor got %d, want -1", session.FollowUpFor)
	}
	if session.CurrentQuestion.Text == "" || session.CurrentQuestion.ExpectedAnswer == "" {
		t.Errorf("Generated question incomplete: %+v", session.CurrentQuestion)
	}
}

func TestStartInterview_LLMFailure(t *testing.T) {
	failing := &mockLLM{
		onComplete: func(ctx context.Context, system string, user string) (string, error) {
			return "", errors.New("provider down")
		},
	}
	s := newTestService(failing, &scoredEmbedder{}, nil)

	session := s.StartInterview(context.Background(), "Backend Engineer", "Senior")

	if session.CurrentQuestion.Text != FallbackOpeningQuestion {
		t.Errorf("Expected fallback question, got %q", session.CurrentQuestion.Text)
	}
	if session.State != interviewModel.StateAwaitingAnswer {
		t.Errorf("Session should continue despite LLM failure, state %s", session.State)
	}
}

func TestSubmitAnswer_ThreeAnswerSession(t *testing.T) {
	embedder := &scoredEmbedder{scores: map[string]float64{
		"answer one":   0.9,
		"answer two":   0.3,
		"answer three": 0.6,
	}}
	s := newTestService(&mockLLM{}, embedder, nil)
	ctx := context.Background()

	session := s.StartInterview(ctx, "Backend Engineer", "Senior")

	session, err := s.SubmitAnswer(ctx, session, "answer one")
	if err != nil {
		t.Fatalf("SubmitAnswer 1 failed: %v", err)
	}
	if session.FollowUpFor != -1 {
		t.Errorf("High score should not trigger a follow-up, FollowUpFor=%d", session.FollowUpFor)
	}

	session, err = s.SubmitAnswer(ctx, session, "answer two")
	if err != nil {
		t.Fatalf("SubmitAnswer 2 failed: %v", err)
	}
	if session.FollowUpFor != 1 {
		t.Errorf("Low score should mark follow-up for response 1, FollowUpFor=%d", session.FollowUpFor)
	}

	session, err = s.SubmitAnswer(ctx, session, "answer three")
	if err != nil {
		t.Fatalf("SubmitAnswer 3 failed: %v", err)
	}

	if session.QuestionCounter != 4 {
		t.Errorf("QuestionCounter got %d, want 4", session.QuestionCounter)
	}
	if len(session.Responses) != 2 {
		t.Fatalf("Expected 2 top-level responses, got %d", len(session.Responses))
	}
	if len(session.Responses[1].FollowUps) != 1 {
		t.Fatalf("Expected 1 follow-up under response 1, got %d", len(session.Responses[1].FollowUps))
	}
	if session.FollowUpFor != -1 {
		t.Errorf("Acceptable follow-up answer should clear FollowUpFor, got %d", session.FollowUpFor)
	}

	stats := s.SessionStats(session)
	if stats.TotalQuestions != 2 {
		t.Errorf("TotalQuestions got %d, want 2", stats.TotalQuestions)
	}
	if math.Abs(stats.AverageScore-0.6) > 1e-6 {
		t.Errorf("AverageScore got %f, want 0.6", stats.AverageScore)
	}
	if stats.TotalFollowUps != 1 {
		t.Errorf("TotalFollowUps got %d, want 1", stats.TotalFollowUps)
	}
	if math.Abs(stats.AvgFollowUpScore-0.6) > 1e-6 {
		t.Errorf("AvgFollowUpScore got %f, want 0.6", stats.AvgFollowUpScore)
	}
}

func TestSubmitAnswer_EmptyAnswer(t *testing.T) {
	s := newTestService(&mockLLM{}, &scoredEmbedder{}, nil)
	ctx := context.Background()

	session := s.StartInterview(ctx, "Backend Engineer", "Junior")
	session, err := s.SubmitAnswer(ctx, session, "   ")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	if len(session.Responses) != 1 {
		t.Fatalf("Expected 1 response, got %d", len(session.Responses))
	}
	resp := session.Responses[0]
	if resp.SimilarityScore != 0.0 {
		t.Errorf("Empty answer score got %f, want 0.0", resp.SimilarityScore)
	}
	if resp.Feedback != similarity.FeedbackNeedsWork {
		t.Errorf("Feedback got %q, want %q", resp.Feedback, similarity.FeedbackNeedsWork)
	}
	if session.FollowUpFor != 0 {
		t.Errorf("Empty answer should trigger a follow-up, FollowUpFor=%d", session.FollowUpFor)
	}
}

func TestSubmitAnswer_EmbeddingOutage(t *testing.T) {
	s := newTestService(&mockLLM{}, &scoredEmbedder{err: errors.New("quota exceeded")}, nil)
	ctx := context.Background()

	session := s.StartInterview(ctx, "Backend Engineer", "Senior")
	before := session.QuestionCounter

	updated, err := s.SubmitAnswer(ctx, session, "a real answer")
	if err == nil {
		t.Fatal("Expected error when embedding service is down")
	}
	if updated.State != interviewModel.StateAwaitingAnswer {
		t.Errorf("Session should stay answerable, state %s", updated.State)
	}
	if len(updated.Responses) != 0 {
		t.Errorf("No response should be recorded on outage, got %d", len(updated.Responses))
	}
	if updated.QuestionCounter != before {
		t.Errorf("Counter should not advance on outage: %d -> %d", before, updated.QuestionCounter)
	}
}

func TestSubmitAnswer_EndedSession(t *testing.T) {
	s := newTestService(&mockLLM{}, &scoredEmbedder{}, nil)
	ctx := context.Background()

	session := s.StartInterview(ctx, "Backend Engineer", "Senior")
	session, err := s.EndInterview(ctx, session)
	if err != nil {
		t.Fatalf("EndInterview failed: %v", err)
	}

	_, err = s.SubmitAnswer(ctx, session, "too late")
	if !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Expected ErrSessionEnded, got %v", err)
	}
}

func TestSubmitAnswer_LLMFailureUsesFallback(t *testing.T) {
	llmCalls := 0
	flaky := &mockLLM{
		onComplete: func(ctx context.Context, system string, user string) (string, error) {
			llmCalls++
			if llmCalls > 1 {
				return "", errors.New("provider down")
			}
			return fmt.Sprintf("%s Opening question?\n%s Model answer.", questionMarker, expectedAnswerMarker), nil
		},
	}
	embedder := &scoredEmbedder{scores: map[string]float64{"good answer": 0.9}}
	s := newTestService(flaky, embedder, nil)
	ctx := context.Background()

	session := s.StartInterview(ctx, "Backend Engineer", "Senior")
	session, err := s.SubmitAnswer(ctx, session, "good answer")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if session.CurrentQuestion.Text != FallbackNextQuestion {
		t.Errorf("Expected fallback next question, got %q", session.CurrentQuestion.Text)
	}
	if session.State != interviewModel.StateAwaitingAnswer {
		t.Errorf("Session should continue, state %s", session.State)
	}
}

func TestEndInterview(t *testing.T) {
	exporter := &mockExporter{}
	s := newTestService(&mockLLM{}, &scoredEmbedder{}, exporter)
	ctx := context.Background()

	session := s.StartInterview(ctx, "Backend Engineer", "Senior")
	session, err := s.EndInterview(ctx, session)
	if err != nil {
		t.Fatalf("EndInterview failed: %v", err)
	}
	if session.State != interviewModel.StateEnded {
		t.Errorf("State got %s, want %s", session.State, interviewModel.StateEnded)
	}
	if session.EndedAt.IsZero() {
		t.Error("EndedAt not set")
	}
	if exporter.calls != 1 {
		t.Errorf("Exporter calls got %d, want 1", exporter.calls)
	}

	// Ending again is a no-op, not a second export.
	session, err = s.EndInterview(ctx, session)
	if err != nil {
		t.Fatalf("Second EndInterview failed: %v", err)
	}
	if exporter.calls != 1 {
		t.Errorf("Exporter calls after repeat got %d, want 1", exporter.calls)
	}
}

func TestEndInterview_ExportFailure(t *testing.T) {
	exporter := &mockExporter{err: errors.New("disk full")}
	s := newTestService(&mockLLM{}, &scoredEmbedder{}, exporter)
	ctx := context.Background()

	session := s.StartInterview(ctx, "Backend Engineer", "Senior")
	session, err := s.EndInterview(ctx, session)

	if err == nil {
		t.Fatal("Expected export error to surface")
	}
	if session.State != interviewModel.StateEnded {
		t.Errorf("Session should still end, state %s", session.State)
	}
}

func TestParseGeneratedQuestion(t *testing.T) {
	tests := []struct {
		name         string
		completion   string
		wantQuestion string
		wantExpected string
	}{
		{
			name:         "WellFormed",
			completion:   "Question: What is a goroutine?\nExpected Answer: A lightweight thread managed by the runtime.",
			wantQuestion: "What is a goroutine?",
			wantExpected: "A lightweight thread managed by the runtime.",
		},
		{
			name:         "NoMarkers",
			completion:   "Tell me about channels.",
			wantQuestion: "Tell me about channels.",
			wantExpected: "",
		},
		{
			name:         "MarkersOutOfOrder",
			completion:   "Expected Answer: x\nQuestion: y",
			wantQuestion: "Expected Answer: x\nQuestion: y",
			wantExpected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, e := parseGeneratedQuestion(tt.completion)
			if q != tt.wantQuestion {
				t.Errorf("question got %q, want %q", q, tt.wantQuestion)
			}
			if e != tt.wantExpected {
				t.Errorf("expected answer got %q, want %q", e, tt.wantExpected)
			}
		})
	}
}
