package memoryDB

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/interviewcoach/CoachAPI/internal/rag/similarity"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

// Store is the in-process fallback index used when Qdrant is offline, and
// the test double for the pipeline. Writes to a collection are serialized by
// a single store-wide RWMutex.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]vectorDB.IndexEntry
	logger      *logger_i.Logger
}

func InitMemoryIndex() *Store {
	return &Store{
		collections: make(map[string]map[string]vectorDB.IndexEntry),
		logger:      logger_i.NewLogger("InMem VectorIndex"),
	}
}

func (s *Store) EnsureCollection(ctx context.Context, collectionName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collectionName]; !ok {
		s.collections[collectionName] = make(map[string]vectorDB.IndexEntry)
	}
	return nil
}

func (s *Store) Upsert(ctx context.Context, collectionName string, entries []vectorDB.IndexEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.collections[collectionName]
	if !ok {
		collection = make(map[string]vectorDB.IndexEntry)
		s.collections[collectionName] = collection
	}

	for _, entry := range entries {
		collection[entry.Id] = entry
	}
	return len(entries), nil
}

func (s *Store) Query(ctx context.Context, collectionName string, vector []float32, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", vectorDB.ErrInvalidArgument, k)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var scored []vectorDB.ScoredEntry
	for _, entry := range s.collections[collectionName] {
		if !matchesFilter(entry.Metadata, filter) {
			continue
		}
		scored = append(scored, vectorDB.ScoredEntry{
			Entry:    entry,
			Distance: 1 - similarity.CosineSimilarity(vector, entry.Vector),
		})
	}

	sort.Slice(scored, func(i, j int) bool { return scored[i].Distance < scored[j].Distance })

	//fewer than k entries returns all of them, not an error
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

func (s *Store) DeleteAll(ctx context.Context, collectionName string, filter map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.collections[collectionName]
	if !ok {
		return nil
	}
	if filter == nil {
		s.collections[collectionName] = make(map[string]vectorDB.IndexEntry)
		return nil
	}
	for id, entry := range collection {
		if matchesFilter(entry.Metadata, filter) {
			delete(collection, id)
		}
	}
	return nil
}

func matchesFilter(metadata, filter map[string]string) bool {
	for key, want := range filter {
		if metadata[key] != want {
			return false
		}
	}
	return true
}
