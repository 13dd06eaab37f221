// Package qa answers questions over the indexed corpus via retrieval-augmented
// generation: retrieve the closest chunks, generate a grounded Hindi answer,
// then translate it to English.
package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/uttarai/uttar/internal/embedding"
	"github.com/uttarai/uttar/internal/llm"
	"github.com/uttarai/uttar/internal/models"
	"github.com/uttarai/uttar/internal/vector"
	"github.com/uttarai/uttar/pkg/utils"
	"go.uber.org/zap"
)

// FallbackAnswer is returned when the model produces no answer at all.
const FallbackAnswer = "I'm sorry, I couldn't find an answer to that question."

// FallbackTranslation is returned when the translation step yields empty output.
const FallbackTranslation = "Translation failed."

// Engine wires the embedder, vector index, and completion model into one
// question-answering pipeline. The chunk set is fixed at construction.
type Engine struct {
	embedder  embedding.Embedder
	index     vector.Index
	completer llm.Completer
	chunks    map[string]models.Chunk
	topK      int
	logger    *zap.Logger
}

// NewEngine creates a QA engine over the given chunks. logger may be nil.
func NewEngine(
	embedder embedding.Embedder,
	index vector.Index,
	completer llm.Completer,
	chunks []models.Chunk,
	topK int,
	logger *zap.Logger,
) *Engine {
	if topK <= 0 {
		topK = 4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	byID := make(map[string]models.Chunk, len(chunks))
	for _, c := range chunks {
		byID[c.ID] = c
	}
	return &Engine{
		embedder:  embedder,
		index:     index,
		completer: completer,
		chunks:    byID,
		topK:      topK,
		logger:    logger,
	}
}

// Ask answers query from the corpus. The Hindi answer is generated from the
// retrieved context; a second model call translates it to English. Empty
// model output yields the fixed fallback strings; API failures propagate.
func (e *Engine) Ask(ctx context.Context, query string) (*models.Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}

	queryVec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	hits, err := e.index.Search(ctx, queryVec, e.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	var sources []models.Chunk
	var contextParts []string
	for _, hit := range hits {
		chunk, ok := e.chunks[hit.ID]
		if !ok {
			continue
		}
		sources = append(sources, chunk)
		contextParts = append(contextParts, chunk.Content)
	}
	e.logger.Debug("retrieved context",
		zap.String("query", utils.Truncate(query, 120)),
		zap.Int("chunks", len(sources)),
	)

	prompt := fmt.Sprintf(answerPromptTmpl, strings.Join(contextParts, "\n\n"), query)
	hindi, err := e.completer.Complete(ctx, answerSystemMessage, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	if hindi == "" {
		return &models.Answer{English: FallbackAnswer, Sources: sources}, nil
	}

	english, err := e.completer.Complete(ctx, translateSystemMessage, fmt.Sprintf(translatePromptTmpl, hindi))
	if err != nil {
		return nil, fmt.Errorf("translate answer: %w", err)
	}
	if english == "" {
		english = FallbackTranslation
	}
	return &models.Answer{Hindi: hindi, English: english, Sources: sources}, nil
}
