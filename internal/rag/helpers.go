package rag

import (
	"context"
	"net/http"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/internal/metrics"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
)

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) embedQuery(ctx context.Context, query string) ([]float32, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.GetEmbedding(ctx, query)
}

func (s *service) queryIndex(ctx context.Context, collectionName string, vector []float32, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	return s.index.Query(ctx, collectionName, vector, k, filter)
}
