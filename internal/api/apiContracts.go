package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	JobType   string            `json:"job_type" example:"ResumeIngest"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type IngestResult struct {
	FileName   string   `json:"file_name"`
	ChunkCount int      `json:"chunk_count"`
	Skills     []string `json:"skills,omitempty"`
}

type AvatarResult struct {
	VideoURL string `json:"video_url,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

type Result struct {
	Status       string        `json:"status"`
	CurrentStep  string        `json:"current_step,omitempty"`
	IngestResult *IngestResult `json:"ingest_result,omitempty"`
	AvatarResult *AvatarResult `json:"avatar_result,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// interview ---------------------

type StartInterviewRequest struct {
	Role            string `json:"role" validate:"required"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type InterviewStateResponse struct {
	SessionId       string            `json:"session_id"`
	State           string            `json:"state"`
	CurrentQuestion string            `json:"current_question,omitempty"`
	QuestionNumber  int               `json:"question_number"`
	LastEvaluation  *AnswerEvaluation `json:"last_evaluation,omitempty"`
}

type AnswerEvaluation struct {
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
	IsFollowUp bool    `json:"is_follow_up"`
}

type EndInterviewResponse struct {
	SessionId      string  `json:"session_id"`
	TotalQuestions int     `json:"total_questions"`
	AverageScore   float64 `json:"average_score"`
}

// mcq ---------------------

type MCQRoleResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type MCQQuestionResponse struct {
	Id       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	RoleId   string   `json:"role_id"`
}

type CheckAnswerRequest struct {
	RoleId         string `json:"role_id" validate:"required"`
	QuestionId     string `json:"question_id" validate:"required"`
	SelectedOption int    `json:"selected_option"`
}

type CheckAnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectOption int    `json:"correct_option"`
	Explanation   string `json:"explanation,omitempty"`
}

// avatar ---------------------

type AvatarRenderRequest struct {
	Text     string `json:"text" validate:"required"`
	AvatarId string `json:"avatar_id,omitempty"`
}

// requests ---------------------

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
