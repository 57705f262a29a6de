package interviewModel

import (
	"context"
	"time"
)

type SessionState string

const (
	StateAwaitingAnswer SessionState = "AWAITING_ANSWER"
	StateEvaluating     SessionState = "EVALUATING"
	StateFollowUp       SessionState = "FOLLOW_UP"
	StateNextQuestion   SessionState = "NEXT_QUESTION"
	StateEnded          SessionState = "ENDED"
)

// Question is immutable after load or generation. ExpectedAnswer is what a
// submitted answer is scored against; it is never silently substituted with
// the question text.
type Question struct {
	Id             string   `json:"id"`
	Text           string   `json:"question"`
	Options        []string `json:"options,omitempty"` //empty for open-ended
	CorrectAnswer  int      `json:"correct_answer,omitempty"`
	ExpectedAnswer string   `json:"expected_answer,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
	RoleId         string   `json:"role_id,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	Category       string   `json:"category,omitempty"`
}

// InterviewResponse records one submitted answer. Follow-up responses nest
// under the response they address; the only permitted mutation is appending
// to FollowUps while the session is live.
type InterviewResponse struct {
	QuestionId      string              `json:"question_id"`
	QuestionText    string              `json:"question"`
	UserAnswer      string              `json:"user_answer"`
	SimilarityScore float64             `json:"similarity_score"`
	Feedback        string              `json:"feedback"`
	FollowUps       []InterviewResponse `json:"follow_ups"`
	Timestamp       time.Time           `json:"timestamp"`
}

// InterviewSession is an explicit value passed into and returned from each
// pipeline call. No ambient globals hold session state.
type InterviewSession struct {
	Id              string              `json:"id"`
	Role            string              `json:"role"`
	ExperienceLevel string              `json:"experience_level"`
	State           SessionState        `json:"state"`
	Responses       []InterviewResponse `json:"responses"`
	CurrentQuestion Question            `json:"current_question"`
	QuestionCounter int                 `json:"question_counter"`
	FollowUpFor     int                 `json:"follow_up_for"` //index into Responses, -1 when not in a follow-up
	StartedAt       time.Time           `json:"started_at"`
	EndedAt         time.Time           `json:"ended_at,omitempty"`
}

// SessionStats is the aggregator output. Always recomputed from the response
// tree, never cached, since responses mutate during a live session.
type SessionStats struct {
	TotalQuestions         int                  `json:"total_questions"`
	CorrectAnswers         int                  `json:"correct_answers"`
	Accuracy               float64              `json:"accuracy"`
	AverageScore           float64              `json:"average_score"`
	CategoryCounts         map[string]int       `json:"categories"`
	CategoryScores         map[string][]float64 `json:"category_scores"`
	Scores                 []float64            `json:"scores"`
	TotalFollowUps         int                  `json:"total_follow_ups"`
	AvgFollowUpScore       float64              `json:"avg_follow_up_score"`
	QuestionsWithFollowUps int                  `json:"questions_with_follow_ups"`
}

// SessionExport is the JSON document written once per ended session.
type SessionExport struct {
	Timestamp       string              `json:"timestamp"`
	Role            string              `json:"role"`
	ExperienceLevel string              `json:"experience_level"`
	Responses       []InterviewResponse `json:"responses"`
	TotalQuestions  int                 `json:"total_questions"`
	AverageScore    float64             `json:"average_score"`
}

type SessionStore interface {
	SaveSession(ctx context.Context, session InterviewSession) error
	GetSession(ctx context.Context, sessionId string) (InterviewSession, bool)
	DeleteSession(ctx context.Context, sessionId string)
}
