package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/adapter/utils"
	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/interviewcoach/CoachAPI/internal/metrics"
	"github.com/interviewcoach/CoachAPI/internal/rag"
	"github.com/interviewcoach/CoachAPI/internal/rag/embedding"
	"github.com/interviewcoach/CoachAPI/internal/rag/llm"
	"github.com/interviewcoach/CoachAPI/internal/rag/similarity"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

var (
	ErrSessionEnded = errors.New("interview session has ended")
	ErrInvalidState = errors.New("session is not awaiting an answer")
)

// Exporter persists an ended session. Implemented by the report package.
type Exporter interface {
	ExportSession(session interviewModel.InterviewSession) (string, error)
}

// Service drives the interview dialogue. Sessions are explicit values: every
// call takes the current session and returns the updated one, so the caller
// owns persistence and no state hides in the package.
type Service interface {
	StartInterview(ctx context.Context, role string, experienceLevel string) interviewModel.InterviewSession
	SubmitAnswer(ctx context.Context, session interviewModel.InterviewSession, answer string) (interviewModel.InterviewSession, error)
	EndInterview(ctx context.Context, session interviewModel.InterviewSession) (interviewModel.InterviewSession, error)
	SessionStats(session interviewModel.InterviewSession) interviewModel.SessionStats
}

type service struct {
	retriever   rag.Service
	llmProvider llm.Provider
	embedder    embedding.Embedder
	exporter    Exporter
	rules       []CategoryRule
	threshold   float64
	logger      *logger_i.Logger
}

// NewService constructor
func NewService(retriever rag.Service, provider llm.Provider, em embedding.Embedder, exporter Exporter, rules []CategoryRule) Service {
	if len(rules) == 0 {
		rules = DefaultCategoryRules
	}
	return &service{
		retriever:   retriever,
		llmProvider: provider,
		embedder:    em,
		exporter:    exporter,
		rules:       rules,
		threshold:   config.SimilarityThreshold,
		logger:      logger_i.NewLogger("Interview Service :"),
	}
}

func (s *service) StartInterview(ctx context.Context, role string, experienceLevel string) interviewModel.InterviewSession {
	session := interviewModel.InterviewSession{
		Id:              utils.GetNewUUID(),
		Role:            role,
		ExperienceLevel: experienceLevel,
		State:           interviewModel.StateAwaitingAnswer,
		Responses:       []interviewModel.InterviewResponse{},
		QuestionCounter: 1,
		FollowUpFor:     -1,
		StartedAt:       time.Now(),
	}

	systemPrompt := interviewerSystemPrompt(role, experienceLevel)
	session.CurrentQuestion = s.generateQuestion(ctx, systemPrompt, openingQuestionPrompt(), FallbackOpeningQuestion)

	s.logger.Info("Interview started", "sessionId", session.Id, "role", role)
	return session
}

// SubmitAnswer runs one evaluation turn. The session comes back unchanged
// when the answer cannot be scored, so the caller can retry the same turn.
func (s *service) SubmitAnswer(ctx context.Context, session interviewModel.InterviewSession, answer string) (interviewModel.InterviewSession, error) {
	if session.State == interviewModel.StateEnded {
		return session, ErrSessionEnded
	}
	if session.State != interviewModel.StateAwaitingAnswer {
		return session, fmt.Errorf("%w: state %s", ErrInvalidState, session.State)
	}

	turnContext, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	session.State = interviewModel.StateEvaluating

	score, err := s.evaluate(turnContext, answer, session.CurrentQuestion)
	if err != nil {
		session.State = interviewModel.StateAwaitingAnswer
		return session, err
	}

	acceptable := similarity.IsAcceptable(score, s.threshold)
	response := interviewModel.InterviewResponse{
		QuestionId:      session.CurrentQuestion.Id,
		QuestionText:    session.CurrentQuestion.Text,
		UserAnswer:      answer,
		SimilarityScore: score,
		Feedback:        similarity.FeedbackTier(score, acceptable),
		FollowUps:       []interviewModel.InterviewResponse{},
		Timestamp:       time.Now(),
	}

	// One increment per recorded response, follow-up or not.
	session.QuestionCounter++

	parentIdx := session.FollowUpFor
	if parentIdx >= 0 && parentIdx < len(session.Responses) {
		session.Responses[parentIdx].FollowUps = append(session.Responses[parentIdx].FollowUps, response)
	} else {
		session.Responses = append(session.Responses, response)
		parentIdx = len(session.Responses) - 1
	}

	systemPrompt := interviewerSystemPrompt(session.Role, session.ExperienceLevel)

	if !acceptable {
		session.State = interviewModel.StateFollowUp
		contexts := s.retriever.RetrieveContext(turnContext, session.CurrentQuestion.Text+" "+answer, config.RetrievalTopK, nil)
		prompt := followUpPrompt(session.CurrentQuestion.Text, answer, contexts)
		session.CurrentQuestion = s.generateQuestion(turnContext, systemPrompt, prompt, FallbackFollowUpQuestion)
		session.FollowUpFor = parentIdx
	} else {
		session.State = interviewModel.StateNextQuestion
		contexts := s.retriever.RetrieveContext(turnContext, answer, config.RetrievalTopK, nil)
		prompt := nextQuestionPrompt(answer, contexts)
		session.CurrentQuestion = s.generateQuestion(turnContext, systemPrompt, prompt, FallbackNextQuestion)
		session.FollowUpFor = -1
	}

	session.State = interviewModel.StateAwaitingAnswer
	return session, nil
}

// EndInterview is idempotent. The ended session is returned even when the
// export write fails, so the caller keeps the in-memory record.
func (s *service) EndInterview(ctx context.Context, session interviewModel.InterviewSession) (interviewModel.InterviewSession, error) {
	if session.State == interviewModel.StateEnded {
		return session, nil
	}

	session.State = interviewModel.StateEnded
	session.EndedAt = time.Now()

	if s.exporter != nil {
		path, err := s.exporter.ExportSession(session)
		if err != nil {
			s.logger.Error("Session export failed", "sessionId", session.Id, "error", err)
			return session, fmt.Errorf("exporting session %s: %w", session.Id, err)
		}
		s.logger.Info("Session exported", "sessionId", session.Id, "path", path)
	}
	return session, nil
}

func (s *service) SessionStats(session interviewModel.InterviewSession) interviewModel.SessionStats {
	return ComputeStats(session, s.rules, s.threshold)
}

// evaluate scores the answer against the question's expected answer. An
// empty answer scores 0.0 without an embedding call. An embedding outage is
// an error, not a silent zero score.
func (s *service) evaluate(ctx context.Context, answer string, question interviewModel.Question) (float64, error) {
	if strings.TrimSpace(answer) == "" {
		return 0.0, nil
	}

	expected := question.ExpectedAnswer
	if expected == "" {
		// Last resort when the generator omitted a model answer. Scores
		// against the question text are weaker signals.
		s.logger.Warn("Question has no expected answer, scoring against question text", "questionId", question.Id)
		expected = question.Text
	}

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("evaluation", time.Since(start)) }()

	answerVec, err := s.embedder.GetEmbedding(ctx, answer)
	if err != nil {
		return 0, fmt.Errorf("embedding answer: %w", err)
	}
	expectedVec, err := s.embedder.GetEmbedding(ctx, expected)
	if err != nil {
		return 0, fmt.Errorf("embedding expected answer: %w", err)
	}

	return similarity.CosineSimilarity(answerVec, expectedVec), nil
}

func (s *service) generateQuestion(ctx context.Context, systemPrompt string, userPrompt string, fallback string) interviewModel.Question {
	start := time.Now()
	completion, err := s.llmProvider.Complete(ctx, systemPrompt, userPrompt)
	metrics.CaptureExecutionMetrics("llm_generation", time.Since(start))

	question := interviewModel.Question{Id: utils.GetNewUUID()}

	if err != nil {
		s.logger.Error("Question generation failed, using fallback question", "error", err)
		question.Text = fallback
		question.Category = Categorize(fallback, s.rules)
		return question
	}

	text, expected := parseGeneratedQuestion(completion)
	if text == "" {
		text = fallback
	}
	if expected == "" {
		s.logger.Warn("Generated question has no expected answer", "questionId", question.Id)
	}

	question.Text = text
	question.ExpectedAnswer = expected
	question.Category = Categorize(text, s.rules)
	return question
}
