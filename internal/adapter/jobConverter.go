package adapter

import (
	"fmt"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/api"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id), //pass "status/job.Id"
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:       string(job.Status),
		CurrentStep:  string(job.CurrentStep),
		IngestResult: toIngestResult(job),
		AvatarResult: toAvatarResult(job),
	}

	return api.JobResponse{
		Id:        job.Id,
		JobType:   string(job.JobType),
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func toIngestResult(job jobModel.Job) *api.IngestResult {
	if job.JobType != jobModel.JobTypeIngest || job.Status != jobModel.JobStatusComplete {
		return nil
	}
	result := &api.IngestResult{
		FileName:   job.JobPayload.IngestFileName,
		ChunkCount: job.JobPayload.ChunkCount,
	}
	if job.JobPayload.ResumeMetadata != nil {
		result.Skills = job.JobPayload.ResumeMetadata.Skills
	}
	return result
}

func toAvatarResult(job jobModel.Job) *api.AvatarResult {
	if job.JobType != jobModel.JobTypeAvatar {
		return nil
	}
	if job.JobPayload.AvatarVideoURL == "" && job.JobPayload.AvatarFilePath == "" {
		return nil
	}
	return &api.AvatarResult{
		VideoURL: job.JobPayload.AvatarVideoURL,
		FilePath: job.JobPayload.AvatarFilePath,
	}
}

func ToInterviewStateResponse(session interviewModel.InterviewSession, evaluation *api.AnswerEvaluation) api.InterviewStateResponse {
	return api.InterviewStateResponse{
		SessionId:       session.Id,
		State:           string(session.State),
		CurrentQuestion: session.CurrentQuestion.Text,
		QuestionNumber:  session.QuestionCounter,
		LastEvaluation:  evaluation,
	}
}

func LastEvaluation(session interviewModel.InterviewSession) *api.AnswerEvaluation {
	last := lastResponse(session.Responses)
	if last == nil {
		return nil
	}
	return &api.AnswerEvaluation{
		Score:      last.SimilarityScore,
		Feedback:   last.Feedback,
		IsFollowUp: session.FollowUpFor >= 0,
	}
}

// lastResponse finds the most recently recorded response, which may be a
// follow-up nested under the last top-level response.
func lastResponse(responses []interviewModel.InterviewResponse) *interviewModel.InterviewResponse {
	if len(responses) == 0 {
		return nil
	}
	last := &responses[len(responses)-1]
	if nested := lastResponse(last.FollowUps); nested != nil && nested.Timestamp.After(last.Timestamp) {
		return nested
	}
	return last
}

func ToMCQQuestionResponses(questions []interviewModel.Question) []api.MCQQuestionResponse {
	out := make([]api.MCQQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, api.MCQQuestionResponse{
			Id:       q.Id,
			Question: q.Text,
			Options:  q.Options,
			RoleId:   q.RoleId,
		})
	}
	return out
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
