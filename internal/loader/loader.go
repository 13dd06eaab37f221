// Package loader scans the document directory and builds the text corpus.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uttarai/uttar/internal/extract"
	"github.com/uttarai/uttar/internal/models"
	"go.uber.org/zap"
)

// Loader reads every supported document in a directory and concatenates
// the extracted texts into one corpus.
type Loader struct {
	extractor *extract.Extractor
	logger    *zap.Logger
}

// New creates a loader. logger may be nil.
func New(extractor *extract.Extractor, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{extractor: extractor, logger: logger}
}

// Load scans dir (non-recursive) for .pdf and .docx files, extracts each one,
// and returns the documents plus the concatenated corpus. Files that fail
// extraction or yield no text are skipped with a warning; a missing directory
// or an entirely empty corpus is an error.
func (l *Loader) Load(ctx context.Context, dir string) ([]models.Document, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("documents folder not found: %w", err)
	}

	var docs []models.Document
	var texts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".pdf", ".docx":
		default:
			continue
		}
		path := filepath.Join(dir, name)
		text, err := l.extractor.Extract(ctx, path)
		if err != nil {
			l.logger.Warn("skipping unreadable document", zap.String("file", name), zap.Error(err))
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			l.logger.Warn("skipping document with no text", zap.String("file", name))
			continue
		}
		docs = append(docs, models.Document{Path: path, Name: name, Text: text})
		texts = append(texts, text)
		l.logger.Info("loaded document", zap.String("file", name), zap.Int("chars", len(text)))
	}

	if len(docs) == 0 {
		return nil, "", fmt.Errorf("no valid content found in the PDF or DOCX files under %s", dir)
	}
	return docs, strings.Join(texts, "\n"), nil
}
