// Package chunk splits the document corpus into overlapping retrieval units.
package chunk

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/uttarai/uttar/internal/models"
)

// Splitter splits text into overlapping chunks bounded by Size runes,
// cutting at natural boundaries where possible.
type Splitter struct {
	size    int
	overlap int
}

// NewSplitter creates a splitter with the given size and overlap (in runes).
func NewSplitter(size, overlap int) *Splitter {
	if size <= 0 {
		size = 500
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 10
	}
	return &Splitter{size: size, overlap: overlap}
}

// Split returns the ordered chunks of text. Every chunk is a contiguous
// substring of text (modulo surrounding whitespace), at most Size runes
// long, and consecutive chunks overlap by roughly Overlap runes so context
// survives across boundaries. Empty input yields no chunks.
func (s *Splitter) Split(text string) []models.Chunk {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}
	var chunks []models.Chunk
	start := 0
	for start < n {
		end := start + s.size
		if end >= n {
			end = n
		} else {
			end = breakPoint(runes, start, end)
		}
		content := strings.TrimSpace(string(runes[start:end]))
		if content != "" {
			chunks = append(chunks, models.Chunk{
				ID:      fmt.Sprintf("%04d_%s", len(chunks), uuid.New().String()[:8]),
				Content: content,
				Index:   len(chunks),
			})
		}
		if end >= n {
			break
		}
		next := end - s.overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// breakPoint returns the cut position in (start, limit], preferring a
// paragraph break, then a sentence end (the Hindi danda included), then a
// word boundary. Only the second half of the window is searched so chunks
// never collapse below half the configured size; when no boundary is found
// the cut lands at limit, splitting mid-word as a last resort.
func breakPoint(runes []rune, start, limit int) int {
	floor := start + (limit-start)/2
	for i := limit - 1; i > floor; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	for i := limit - 1; i > floor; i-- {
		switch runes[i] {
		case '।', '.', '!', '?': // U+0964 is the devanagari danda
			return i + 1
		}
	}
	for i := limit - 1; i > floor; i-- {
		if unicode.IsSpace(runes[i]) {
			return i + 1
		}
	}
	return limit
}
