package worker

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/avatar"
	"github.com/interviewcoach/CoachAPI/internal/config"
	jobmodel "github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		// Record total time at the end
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.JobExecutionTimeout)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing job:", "job Id:", job.Id)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	switch job.JobType {
	case jobmodel.JobTypeIngest:
		job.CurrentStep = jobmodel.IngestProcessing
		job = _ragService.IngestResume(ctx, job)

	case jobmodel.JobTypeAvatar:
		job = renderAvatar(ctx, job)

	default:
		logger.Error("Unknown job type", "jobType", job.JobType, "job Id", job.Id)
		job.Status = jobmodel.JobStatusError
		job.CurrentStep = jobmodel.Error
		job.Error = jobmodel.JobError{
			Code:    http.StatusBadRequest,
			Message: "unknown job type: " + string(job.JobType),
		}
	}

	job.EndTime = time.Now()
	saveJobState(ctx, job, job.Status)
}

func renderAvatar(ctx context.Context, job jobmodel.Job) jobmodel.Job {
	if _avatarClient == nil {
		job.Status = jobmodel.JobStatusError
		job.CurrentStep = jobmodel.Error
		job.Error = jobmodel.JobError{
			Code:    http.StatusServiceUnavailable,
			Message: "avatar rendering is not configured",
		}
		return job
	}
	return avatar.ProcessAvatarRender(ctx, job, _avatarClient)
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update status in Redis", "err", err)
	}
}
