package vectorDB

import (
	"context"
	"errors"
)

var (
	ErrInvalidArgument  = errors.New("invalid query argument")
	ErrIndexUnavailable = errors.New("vector index unavailable")
)

// IndexEntry is one (id, vector, metadata) triple. Ids are unique within a
// collection; an upsert with an existing id overwrites it. Metadata keys used
// for filtering must be present on every entry in a filterable collection.
type IndexEntry struct {
	Id       string
	Vector   []float32
	Metadata map[string]string
}

// ScoredEntry pairs an entry with its cosine distance (1 - cosine similarity)
// to the query vector.
type ScoredEntry struct {
	Entry    IndexEntry
	Distance float64
}

// Index is the persistent store of embeddings. Distance metric is cosine,
// fixed per collection at creation.
type Index interface {
	EnsureCollection(ctx context.Context, collectionName string) error

	// Upsert writes the entries and returns the count written.
	Upsert(ctx context.Context, collectionName string, entries []IndexEntry) (int, error)

	// Query returns up to k entries ordered by ascending distance. A filter
	// restricts results to entries whose metadata matches every key/value
	// pair. Querying a collection with fewer than k entries returns all
	// entries, not an error. k <= 0 fails with ErrInvalidArgument.
	Query(ctx context.Context, collectionName string, vector []float32, k int, filter map[string]string) ([]ScoredEntry, error)

	// DeleteAll removes every entry matching the filter, or the whole
	// collection when the filter is nil.
	DeleteAll(ctx context.Context, collectionName string, filter map[string]string) error
}
