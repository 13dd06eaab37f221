// Package models defines core data structures for documents, chunks, and answers.
package models

// Document is a source file and the plain text extracted from it.
// Documents exist only during the startup load; after chunking, only
// the chunks and the source name survive.
type Document struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// Chunk is a bounded-length substring of the concatenated corpus, the
// unit of retrieval. Chunks are immutable once created.
type Chunk struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Index   int    `json:"index"`
}
