package rag_test

import (
	"context"

	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
)

// MockIndex implements vectorDB.Index
type MockIndex struct {
	// Control fields to simulate different behaviors
	OnEnsureCollection func(ctx context.Context, name string) error
	OnUpsert           func(ctx context.Context, name string, entries []vectorDB.IndexEntry) (int, error)
	OnQuery            func(ctx context.Context, name string, vector []float32, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error)
	OnDeleteAll        func(ctx context.Context, name string, filter map[string]string) error
}

func (m *MockIndex) EnsureCollection(ctx context.Context, name string) error {
	if m.OnEnsureCollection != nil {
		return m.OnEnsureCollection(ctx, name)
	}
	return nil
}

func (m *MockIndex) Upsert(ctx context.Context, name string, entries []vectorDB.IndexEntry) (int, error) {
	if m.OnUpsert != nil {
		return m.OnUpsert(ctx, name, entries)
	}
	return len(entries), nil
}

func (m *MockIndex) Query(ctx context.Context, name string, vector []float32, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error) {
	if m.OnQuery != nil {
		return m.OnQuery(ctx, name, vector, k, filter)
	}
	return []vectorDB.ScoredEntry{
		{Entry: vectorDB.IndexEntry{Id: "default", Metadata: map[string]string{"content": "default context"}}, Distance: 0.1},
	}, nil
}

func (m *MockIndex) DeleteAll(ctx context.Context, name string, filter map[string]string) error {
	if m.OnDeleteAll != nil {
		return m.OnDeleteAll(ctx, name, filter)
	}
	return nil
}

type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	// Return dummy vectors matching chunk count
	return make([][]float32, len(chunks)), nil
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1}, nil
}
