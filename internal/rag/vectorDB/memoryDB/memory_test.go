package memoryDB

import (
	"context"
	"errors"
	"testing"

	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
)

func seedEntries() []vectorDB.IndexEntry {
	return []vectorDB.IndexEntry{
		{Id: "a", Vector: []float32{1, 0}, Metadata: map[string]string{"role_id": "backend", "content": "chunk a"}},
		{Id: "b", Vector: []float32{0.9, 0.4359}, Metadata: map[string]string{"role_id": "backend", "content": "chunk b"}},
		{Id: "c", Vector: []float32{0, 1}, Metadata: map[string]string{"role_id": "frontend", "content": "chunk c"}},
	}
}

func TestUpsertQueryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := InitMemoryIndex()

	count, err := store.Upsert(ctx, "test", seedEntries())
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Upsert count got %d, want 3", count)
	}

	hits, err := store.Query(ctx, "test", []float32{1, 0}, 2, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	// Ascending distance: exact match first.
	if hits[0].Entry.Id != "a" || hits[1].Entry.Id != "b" {
		t.Errorf("Hit order got [%s, %s], want [a, b]", hits[0].Entry.Id, hits[1].Entry.Id)
	}
	if hits[0].Distance > hits[1].Distance {
		t.Errorf("Distances not ascending: %f > %f", hits[0].Distance, hits[1].Distance)
	}
	if hits[0].Distance > 1e-6 {
		t.Errorf("Identical vector distance got %f, want 0", hits[0].Distance)
	}
}

func TestUpsertOverwritesById(t *testing.T) {
	ctx := context.Background()
	store := InitMemoryIndex()

	store.Upsert(ctx, "test", seedEntries())
	store.Upsert(ctx, "test", []vectorDB.IndexEntry{
		{Id: "a", Vector: []float32{0, 1}, Metadata: map[string]string{"content": "replaced"}},
	})

	hits, err := store.Query(ctx, "test", []float32{0, 1}, 1, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if hits[0].Entry.Id != "a" || hits[0].Entry.Metadata["content"] != "replaced" {
		t.Errorf("Overwrite not applied: %+v", hits[0].Entry)
	}
}

func TestQueryKLargerThanCollection(t *testing.T) {
	ctx := context.Background()
	store := InitMemoryIndex()
	store.Upsert(ctx, "test", seedEntries())

	hits, err := store.Query(ctx, "test", []float32{1, 0}, 50, nil)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(hits) != 3 {
		t.Errorf("Expected all 3 entries, got %d", len(hits))
	}
}

func TestQueryInvalidK(t *testing.T) {
	store := InitMemoryIndex()

	for _, k := range []int{0, -1} {
		_, err := store.Query(context.Background(), "test", []float32{1, 0}, k, nil)
		if !errors.Is(err, vectorDB.ErrInvalidArgument) {
			t.Errorf("Query(k=%d) error = %v; want ErrInvalidArgument", k, err)
		}
	}
}

func TestQueryWithFilter(t *testing.T) {
	ctx := context.Background()
	store := InitMemoryIndex()
	store.Upsert(ctx, "test", seedEntries())

	hits, err := store.Query(ctx, "test", []float32{1, 0}, 10, map[string]string{"role_id": "backend"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected 2 backend hits, got %d", len(hits))
	}
	for _, h := range hits {
		if h.Entry.Metadata["role_id"] != "backend" {
			t.Errorf("Filter leak: %+v", h.Entry)
		}
	}
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	store := InitMemoryIndex()
	store.Upsert(ctx, "test", seedEntries())

	if err := store.DeleteAll(ctx, "test", map[string]string{"role_id": "backend"}); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	hits, _ := store.Query(ctx, "test", []float32{1, 0}, 10, nil)
	if len(hits) != 1 || hits[0].Entry.Id != "c" {
		t.Errorf("Filtered delete left %v", hits)
	}

	if err := store.DeleteAll(ctx, "test", nil); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	hits, _ = store.Query(ctx, "test", []float32{1, 0}, 10, nil)
	if len(hits) != 0 {
		t.Errorf("Full delete left %v", hits)
	}
}
