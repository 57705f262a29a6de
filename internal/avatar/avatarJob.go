package avatar

import (
	"context"
	"os"
	"strings"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

var jobLogger *logger_i.Logger

// ProcessAvatarRender runs one avatar render job end to end: submit the
// talk, poll it to a terminal state, download the video. Each step updates
// the job's CurrentStep so status polling shows progress.
func ProcessAvatarRender(ctx context.Context, job jobModel.Job, c Client) jobModel.Job {
	jobLogger = logger_i.NewLogger("Avatar Render ")
	jobLogger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string))

	job.CurrentStep = jobModel.AvatarInit

	if strings.TrimSpace(job.JobPayload.AvatarText) == "" {
		jobLogger.Error("Avatar job has no text")
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Avatar text is empty"
		return job
	}

	talkId, err := c.CreateTalk(ctx, job.JobPayload.AvatarText, job.JobPayload.AvatarId)
	if err != nil {
		jobLogger.Error("Error submitting talk", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error submitting avatar render"
		return job
	}
	job.CurrentStep = jobModel.AvatarSubmitted

	job.CurrentStep = jobModel.AvatarPolling
	videoURL, err := c.WaitForVideo(ctx, talkId)
	if err != nil {
		jobLogger.Error("Error waiting for video", "talkId", talkId, "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Avatar render did not finish"
		return job
	}
	job.JobPayload.AvatarVideoURL = videoURL

	path, err := c.DownloadVideo(ctx, videoURL, os.TempDir())
	if err != nil {
		jobLogger.Error("Error downloading video", "talkId", talkId, "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error downloading avatar video"
		return job
	}
	job.CurrentStep = jobModel.AvatarDownloaded
	job.JobPayload.AvatarFilePath = path

	job.Status = jobModel.JobStatusComplete
	return job
}
