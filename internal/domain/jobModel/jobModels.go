package jobModel

import (
	"context"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/domain/commonModels"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	IngestInit       InternalStatus = "IngestInit"
	IngestProcessing InternalStatus = "IngestProcessing"
	ChunkingStep     InternalStatus = "Chunking"
	EmbeddingAPICall InternalStatus = "EmbeddingAPI"
	VectorDBCall     InternalStatus = "VectorDB"

	AvatarInit       InternalStatus = "AvatarInit"
	AvatarSubmitted  InternalStatus = "AvatarSubmitted"
	AvatarPolling    InternalStatus = "AvatarPolling"
	AvatarDownloaded InternalStatus = "AvatarDownloaded"

	Error    InternalStatus = "Error"
	Complete InternalStatus = "Complete"

	JobTypeIngest JobType = "ResumeIngest"
	JobTypeAvatar JobType = "AvatarRender"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	//resume ingestion
	IngestFileName string                       `json:"ingest_file_name,omitempty"`
	IngestURL      string                       `json:"ingest_url,omitempty"`
	ChunkCount     int                          `json:"chunk_count,omitempty"`
	ResumeMetadata *commonModels.ResumeMetadata `json:"resume_metadata,omitempty"`

	//avatar rendering
	AvatarText     string `json:"avatar_text,omitempty"`
	AvatarId       string `json:"avatar_id,omitempty"`
	AvatarVideoURL string `json:"avatar_video_url,omitempty"`
	AvatarFilePath string `json:"avatar_file_path,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
