// Package cli provides CLI output utilities for Uttar.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/uttarai/uttar/internal/models"
)

// AnswerOutputFormat is the format for answer output.
type AnswerOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText AnswerOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON AnswerOutputFormat = "json"
)

// WriteAnswer writes an answer to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteAnswer(w io.Writer, answer *models.Answer, format AnswerOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(answer)
	default:
		writeAnswerText(w, answer)
		return nil
	}
}

func writeAnswerText(w io.Writer, answer *models.Answer) {
	if answer.Hindi != "" {
		fmt.Fprintln(w, answer.Hindi)
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, answer.English)
}
