package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/uttarai/uttar/pkg/utils"
)

// FakeEmbedder is a deterministic embedder for tests. Each whitespace token
// hashes to one vector component, so texts sharing words score higher under
// cosine similarity and the same text always gets the same embedding.
type FakeEmbedder struct {
	dimensions int
}

// NewFakeEmbedder returns an embedder producing deterministic embeddings of
// the given dimension count.
func NewFakeEmbedder(dimensions int) *FakeEmbedder {
	if dimensions <= 0 {
		dimensions = 64
	}
	return &FakeEmbedder{dimensions: dimensions}
}

// Embed returns a normalized token-hash vector for text.
func (f *FakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("embedding: cannot embed empty text")
	}
	v := make([]float32, f.dimensions)
	for _, token := range strings.Fields(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		v[h.Sum32()%uint32(f.dimensions)] += 1
	}
	utils.NormalizeL2(v)
	return v, nil
}

// EmbedBatch embeds each text.
func (f *FakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Dimensions returns the embedding dimension.
func (f *FakeEmbedder) Dimensions() int {
	return f.dimensions
}
