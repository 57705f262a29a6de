package rag

import (
	"context"
	"errors"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/internal/metrics"
	"github.com/interviewcoach/CoachAPI/internal/rag/embedding"
	"github.com/interviewcoach/CoachAPI/internal/rag/ingest"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

/*
ARCHITECTURE NOTE: OPAQUE INTERFACE PATTERN
---------------------------------------------------------

1. Service (Interface):
  - This is the PUBLIC contract.
  - It defines the "behavior" (what callers can do).
  - We expose this to keep the worker and the interview layer decoupled
    from our specific logic.

2. service (Private Struct):
  - This is the PRIVATE implementation.
  - It holds the "state" (vector index and embedding clients).
  - It is lowercase to prevent external packages from accessing our
    internal dependencies directly.

3. Pointer Receiver (*service):
  - By defining methods on (*service), the struct IMPLICITLY satisfies
    the Service interface.

4. Dependency Injection (NewService):
  - This constructor links the private struct to the public interface.
  - It allows us to swap real DBs for mocks during testing without
    changing the callers' code.
*/

// Service is the retrieval surface. The worker calls IngestResume, the
// interview and MCQ layers call Search and RetrieveContext.
type Service interface {
	IngestResume(ctx context.Context, job jobModel.Job) jobModel.Job
	Search(ctx context.Context, collectionName string, queryText string, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error)
	RetrieveContext(ctx context.Context, queryText string, k int, filter map[string]string) []string
}

type service struct {
	index    vectorDB.Index
	embedder embedding.Embedder
	logger   *logger_i.Logger
}

// NewService constructor
func NewService(index vectorDB.Index, em embedding.Embedder) Service {
	return &service{
		index:    index,
		embedder: em,
		logger:   logger_i.NewLogger("RAG Service :"),
	}
}

// Search embeds the query and runs a filtered nearest-neighbour lookup
// against one collection.
func (s *service) Search(ctx context.Context, collectionName string, queryText string, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error) {
	searchContext, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	vector, err := s.embedQuery(searchContext, queryText)
	if err != nil {
		return nil, err
	}
	return s.queryIndex(searchContext, collectionName, vector, k, filter)
}

// RetrieveContext returns the chunk contents most relevant to the query.
// Retrieval is best effort: any failure degrades to an empty context and a
// log line, never an aborted dialogue.
func (s *service) RetrieveContext(ctx context.Context, queryText string, k int, filter map[string]string) []string {
	hits, err := s.Search(ctx, config.ResumeCollectionName, queryText, k, filter)
	if err != nil {
		s.logger.Error("Context retrieval failed, continuing without context", "error", err)
		return []string{}
	}

	contents := make([]string, 0, len(hits))
	for _, hit := range hits {
		if content, ok := hit.Entry.Metadata["content"]; ok && content != "" {
			contents = append(contents, content)
		}
	}
	return contents
}

func (s *service) IngestResume(ctx context.Context, job jobModel.Job) jobModel.Job {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("resume_ingestion", time.Since(start)) }()
	j := ingest.ProcessResumeIngestion(ctx, job, s.embedder, s.index)
	if j.Status != jobModel.JobStatusComplete {
		return s.jobError(j, errors.New("resume ingestion failed"), "INGESTION_FAILURE", true)
	}
	return j
}
