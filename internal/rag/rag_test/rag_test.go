package rag_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/internal/rag"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
)

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(e *MockEmbedder, idx *MockIndex)
		expectHits  int
		expectError bool
	}{
		{
			name: "Success",
			setupMocks: func(e *MockEmbedder, idx *MockIndex) {
				idx.OnQuery = func(ctx context.Context, name string, v []float32, k int, f map[string]string) ([]vectorDB.ScoredEntry, error) {
					return []vectorDB.ScoredEntry{
						{Entry: vectorDB.IndexEntry{Id: "a", Metadata: map[string]string{"content": "chunk a"}}, Distance: 0.1},
						{Entry: vectorDB.IndexEntry{Id: "b", Metadata: map[string]string{"content": "chunk b"}}, Distance: 0.3},
					}, nil
				}
			},
			expectHits: 2,
		},
		{
			name: "Failure_Embedding",
			setupMocks: func(e *MockEmbedder, idx *MockIndex) {
				e.OnGetEmbedding = func(ctx context.Context, text string) ([]float32, error) {
					return nil, errors.New("api limit")
				}
			},
			expectError: true,
		},
		{
			name: "Failure_Index_Query",
			setupMocks: func(e *MockEmbedder, idx *MockIndex) {
				idx.OnQuery = func(ctx context.Context, name string, v []float32, k int, f map[string]string) ([]vectorDB.ScoredEntry, error) {
					return nil, errors.New("db timeout")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEmbed := &MockEmbedder{}
			mIdx := &MockIndex{}
			tt.setupMocks(mEmbed, mIdx)

			s := rag.NewService(mIdx, mEmbed)

			hits, err := s.Search(context.Background(), config.ResumeCollectionName, "what did they build", 3, nil)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(hits) != tt.expectHits {
				t.Errorf("Hits got %d, want %d", len(hits), tt.expectHits)
			}
		})
	}
}

func TestRetrieveContext_MapsHitsToContent(t *testing.T) {
	mIdx := &MockIndex{
		OnQuery: func(ctx context.Context, name string, v []float32, k int, f map[string]string) ([]vectorDB.ScoredEntry, error) {
			return []vectorDB.ScoredEntry{
				{Entry: vectorDB.IndexEntry{Id: "a", Metadata: map[string]string{"content": "built payment service"}}, Distance: 0.1},
				{Entry: vectorDB.IndexEntry{Id: "b", Metadata: map[string]string{}}, Distance: 0.2},
				{Entry: vectorDB.IndexEntry{Id: "c", Metadata: map[string]string{"content": "led migration"}}, Distance: 0.4},
			}, nil
		},
	}
	s := rag.NewService(mIdx, &MockEmbedder{})

	contexts := s.RetrieveContext(context.Background(), "experience", 3, nil)

	if len(contexts) != 2 {
		t.Fatalf("Expected 2 contexts (hit without content skipped), got %d: %v", len(contexts), contexts)
	}
	if contexts[0] != "built payment service" || contexts[1] != "led migration" {
		t.Errorf("Content mismatch: %v", contexts)
	}
}

func TestRetrieveContext_DegradesToEmpty(t *testing.T) {
	mEmbed := &MockEmbedder{
		OnGetEmbedding: func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("quota exceeded")
		},
	}
	s := rag.NewService(&MockIndex{}, mEmbed)

	contexts := s.RetrieveContext(context.Background(), "experience", 3, nil)

	if contexts == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(contexts) != 0 {
		t.Errorf("Expected no contexts on embedding failure, got %v", contexts)
	}
}

func TestIngestResume_Scenarios(t *testing.T) {
	dummyFile := "test_ingest.txt"
	os.WriteFile(dummyFile, []byte("test content for ingestion"), 0644)
	defer os.Remove(dummyFile)

	tests := []struct {
		name           string
		setupMocks     func(e *MockEmbedder, idx *MockIndex)
		expectedStatus jobModel.JobStatus
	}{
		{
			name: "Ingestion_Success",
			setupMocks: func(e *MockEmbedder, idx *MockIndex) {
				e.OnBatchEmbedding = func(ctx context.Context, chunks []string) ([][]float32, error) {
					return make([][]float32, len(chunks)), nil
				}
			},
			expectedStatus: jobModel.JobStatusComplete,
		},
		{
			name: "Failure_Ensure_Collection",
			setupMocks: func(e *MockEmbedder, idx *MockIndex) {
				idx.OnEnsureCollection = func(ctx context.Context, name string) error {
					return errors.New("connection refused")
				}
			},
			expectedStatus: jobModel.JobStatusError,
		},
		{
			name: "Failure_Batch_Upsert",
			setupMocks: func(e *MockEmbedder, idx *MockIndex) {
				e.OnBatchEmbedding = func(ctx context.Context, chunks []string) ([][]float32, error) {
					return make([][]float32, len(chunks)), nil
				}
				idx.OnUpsert = func(ctx context.Context, name string, entries []vectorDB.IndexEntry) (int, error) {
					return 0, errors.New("disk full")
				}
			},
			expectedStatus: jobModel.JobStatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEmbed := &MockEmbedder{}
			mIdx := &MockIndex{}
			tt.setupMocks(mEmbed, mIdx)

			s := rag.NewService(mIdx, mEmbed)

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "ingest-trace")
			job := jobModel.Job{
				Id:      "ingest-job-1",
				JobType: jobModel.JobTypeIngest,
				JobPayload: jobModel.JobPayload{
					IngestFileName: "test_ingest.txt",
					IngestURL:      dummyFile,
				},
			}

			// Re-create file if deleted by previous successful test run
			if _, err := os.Stat(dummyFile); os.IsNotExist(err) {
				os.WriteFile(dummyFile, []byte("test content"), 0644)
			}

			result := s.IngestResume(ctx, job)

			if result.Status != tt.expectedStatus {
				t.Errorf("Status got %v, want %v", result.Status, tt.expectedStatus)
			}

			if tt.expectedStatus == jobModel.JobStatusError && result.Error.Code != http.StatusInternalServerError {
				t.Errorf("Error Code got %d, want %d", result.Error.Code, http.StatusInternalServerError)
			}

			if tt.expectedStatus == jobModel.JobStatusComplete && result.JobPayload.ChunkCount == 0 {
				t.Error("Expected chunk count on successful ingestion")
			}
		})
	}
}
