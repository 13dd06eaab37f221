// Package extract provides text extraction from PDF and DOCX documents,
// with an OCR fallback for scanned PDFs.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uttarai/uttar/internal/ocr"
	"go.uber.org/zap"
)

// Extractor extracts plain text from document files.
type Extractor struct {
	ocr    ocr.Engine  // optional; when nil, scanned PDFs yield empty text
	logger *zap.Logger // optional
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOCR sets the OCR engine used for PDFs whose pages carry no extractable text.
func WithOCR(engine ocr.Engine) Option {
	return func(e *Extractor) { e.ocr = engine }
}

// WithLogger sets a logger for debug events (OCR fallback, skipped pages).
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// NewExtractor returns a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads the file at path and returns its text content.
// PDFs are extracted page-by-page; when every page yields only whitespace
// and an OCR engine is configured, the pages are rasterized and recognized
// instead. DOCX paragraphs are joined with newlines.
// Returns an error for unsupported extensions.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return e.extractPDFFile(ctx, path, content)
	case ".docx":
		return extractDOCX(content)
	default:
		return "", fmt.Errorf("unsupported format: %s", ext)
	}
}

func (e *Extractor) extractPDFFile(ctx context.Context, path string, content []byte) (string, error) {
	text, err := extractPDF(content)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text), nil
	}
	if e.ocr == nil {
		return "", nil
	}
	if e.logger != nil {
		e.logger.Info("no direct text found, using OCR", zap.String("path", path))
	}
	recognized, err := e.ocr.Recognize(ctx, path)
	if err != nil {
		return "", fmt.Errorf("OCR %s: %w", path, err)
	}
	return strings.TrimSpace(recognized), nil
}
