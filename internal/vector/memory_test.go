package vector

import (
	"context"
	"testing"
)

func TestNewMemoryIndex_invalidDimension(t *testing.T) {
	if _, err := NewMemoryIndex(0); err == nil {
		t.Error("expected error for zero dimension")
	}
}

func TestAddAndSearch(t *testing.T) {
	idx, err := NewMemoryIndex(3)
	if err != nil {
		t.Fatalf("NewMemoryIndex: %v", err)
	}
	ctx := context.Background()
	err = idx.Add(ctx, []string{"a", "b", "c"}, [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0.9, 0.1, 0},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if idx.Size() != 3 {
		t.Errorf("Size=%d, want 3", idx.Size())
	}

	results, err := idx.Search(ctx, []float32{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results: got %d, want 2", len(results))
	}
	if results[0].ID != "a" || results[1].ID != "c" {
		t.Errorf("order: got %s, %s", results[0].ID, results[1].ID)
	}
	if results[0].Score < results[1].Score {
		t.Error("results not sorted by score")
	}
}

func TestSearch_kLargerThanIndex(t *testing.T) {
	idx, _ := NewMemoryIndex(2)
	ctx := context.Background()
	_ = idx.Add(ctx, []string{"only"}, [][]float32{{1, 0}})
	results, err := idx.Search(ctx, []float32{0, 1}, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("results: got %d, want 1", len(results))
	}
}

func TestSearch_empty(t *testing.T) {
	idx, _ := NewMemoryIndex(2)
	results, err := idx.Search(context.Background(), []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results != nil {
		t.Errorf("got %v, want nil", results)
	}
}

func TestAdd_dimensionMismatch(t *testing.T) {
	idx, _ := NewMemoryIndex(3)
	err := idx.Add(context.Background(), []string{"a"}, [][]float32{{1, 0}})
	if err == nil {
		t.Error("expected error for dimension mismatch")
	}
}

func TestAdd_lengthMismatch(t *testing.T) {
	idx, _ := NewMemoryIndex(2)
	err := idx.Add(context.Background(), []string{"a", "b"}, [][]float32{{1, 0}})
	if err == nil {
		t.Error("expected error for ids/vectors length mismatch")
	}
}

func TestSearch_queryDimensionMismatch(t *testing.T) {
	idx, _ := NewMemoryIndex(3)
	if _, err := idx.Search(context.Background(), []float32{1, 0}, 1); err == nil {
		t.Error("expected error for query dimension mismatch")
	}
}
