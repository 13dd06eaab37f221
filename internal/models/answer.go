package models

// Answer is the result of one question-answering round: the grounded
// Hindi answer, its English translation, and the chunks it was grounded on.
// Answers are ephemeral and never persisted.
type Answer struct {
	Hindi   string  `json:"hindi"`
	English string  `json:"english"`
	Sources []Chunk `json:"sources,omitempty"`
}
