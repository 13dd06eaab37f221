// Package vector provides the in-memory similarity index over chunk embeddings.
package vector

import "context"

// Index is nearest-neighbor lookup over stored vectors.
type Index interface {
	Add(ctx context.Context, ids []string, vectors [][]float32) error
	Search(ctx context.Context, query []float32, k int) ([]*Result, error)
	Size() int
}

// Result is a single similarity search hit.
type Result struct {
	ID    string
	Score float64 // inner product; cosine similarity for normalized vectors
}
