package ingest

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/domain/commonModels"
	"github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/internal/metrics"
	"github.com/interviewcoach/CoachAPI/internal/rag/embedding"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var logger *logger_i.Logger

// ProcessResumeIngestion runs the full pipeline for one uploaded resume:
// extract, clean, chunk, embed, upsert. Skill and experience extraction
// results travel back to the caller on the job payload.
func ProcessResumeIngestion(ctx context.Context, job jobModel.Job, e embedding.Embedder, index vectorDB.Index) jobModel.Job {
	logger = logger_i.NewLogger("Resume Ingestion ")
	logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string))

	docName := job.JobPayload.IngestFileName
	docPath := job.JobPayload.IngestURL

	logger.Debug("Processing resume", "filename", docName, "path", docPath)

	job.CurrentStep = jobModel.IngestProcessing
	err := index.EnsureCollection(ctx, config.ResumeCollectionName)
	if err != nil {
		logger.Error("Error ensuring collection", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Vector index unavailable"
		return job
	}

	docType := getDocType(docPath)
	if docType == commonModels.ERR {
		logger.Error("Unsupported document type", "path", docPath)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Unsupported document type"
		return job
	}

	doc := commonModels.Document{
		Id:                  job.Id,
		Name:                docName,
		LastIngestTimestamp: time.Now(),
		ContentType:         docType,
	}

	rawPages, err := extractText(docPath, doc.ContentType)
	if err != nil {
		logger.Error("Error extracting resume content", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error extracting document content"
		return job
	}

	var combined string
	for _, page := range rawPages {
		if combined != "" {
			combined += "\n\n"
		}
		combined += page.Content
	}
	cleaned := CleanResumeText(combined)

	meta := ExtractResumeMetadata(cleaned)
	job.JobPayload.ResumeMetadata = &meta

	job.CurrentStep = jobModel.ChunkingStep
	start := time.Now()
	stringChunks, err := SplitText(cleaned, config.MaxChunkSize, config.ChunkOverlap)
	metrics.CaptureExecutionMetrics("chunking", time.Since(start))
	if err != nil {
		logger.Error("Error chunking resume", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error chunking document content"
		return job
	}

	chunks := PrepareChunks(stringChunks, doc)
	job.JobPayload.ChunkCount = len(chunks)
	logger.Debug("Processing resume", "number of chunks", len(chunks))

	err = BatchIngest(ctx, &job, chunks, index, e)
	if err != nil {
		logger.Error("Error ingesting resume", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error indexing document content"
		return job
	}

	err = os.Remove(docPath)
	if err != nil {
		logger.Error("Error removing uploaded file", "error", err)
	}
	job.Status = jobModel.JobStatusComplete
	return job
}

// BatchIngest embeds chunks in batches of 100 and upserts them with their
// content and position in the payload, so retrieval can map hits straight
// back to text.
func BatchIngest(ctx context.Context, job *jobModel.Job, chunks []commonModels.DocChunk, index vectorDB.Index, embedder embedding.Embedder) error {
	batchSize := 100

	for i := 0; i < len(chunks); i += batchSize {
		end := i + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		currentBatch := chunks[i:end]

		texts := make([]string, 0, len(currentBatch))
		for _, c := range currentBatch {
			texts = append(texts, c.Content)
		}

		job.CurrentStep = jobModel.EmbeddingAPICall
		start := time.Now()
		vectors, err := embedder.BatchEmbedding(ctx, texts)
		metrics.CaptureExecutionMetrics("embedding", time.Since(start))
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}
		if len(vectors) != len(currentBatch) {
			return fmt.Errorf("embedding batch returned %d vectors for %d chunks", len(vectors), len(currentBatch))
		}

		entries := make([]vectorDB.IndexEntry, 0, len(currentBatch))
		for j, c := range currentBatch {
			entries = append(entries, vectorDB.IndexEntry{
				Id:     c.ChunkId,
				Vector: vectors[j],
				Metadata: map[string]string{
					"content":     c.Content,
					"source_id":   c.Doc.Id,
					"file_name":   c.Doc.Name,
					"chunk_index": strconv.Itoa(c.ChunkIndex),
				},
			})
		}

		job.CurrentStep = jobModel.VectorDBCall
		start = time.Now()
		_, err = index.Upsert(ctx, config.ResumeCollectionName, entries)
		metrics.CaptureExecutionMetrics("vector_upsert", time.Since(start))
		if err != nil {
			return fmt.Errorf("upserting batch failed: %w", err)
		}
	}

	return nil
}
