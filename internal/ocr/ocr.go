// Package ocr runs optical character recognition on scanned PDFs using
// local external tools (pdftoppm for rasterization, tesseract for
// recognition). Both binaries are resolved once at startup.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/uttarai/uttar/internal/config"
)

// Engine recognizes text in a PDF whose pages carry no extractable text.
type Engine interface {
	Recognize(ctx context.Context, pdfPath string) (string, error)
}

// Tesseract is an Engine backed by the pdftoppm and tesseract binaries.
type Tesseract struct {
	tesseractPath string
	pdftoppmPath  string
	language      string
}

// Locate resolves the OCR tool binaries from config paths or, when unset,
// from PATH. Returns an error naming the missing tool so the caller can
// report clearly why OCR is unavailable.
func Locate(cfg config.OCRConfig) (*Tesseract, error) {
	tess, err := resolveTool(cfg.TesseractPath, "tesseract")
	if err != nil {
		return nil, err
	}
	ppm, err := resolveTool(cfg.PdftoppmPath, "pdftoppm")
	if err != nil {
		return nil, err
	}
	lang := cfg.Language
	if lang == "" {
		lang = "hin"
	}
	return &Tesseract{
		tesseractPath: tess,
		pdftoppmPath:  ppm,
		language:      lang,
	}, nil
}

func resolveTool(configured, name string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("configured %s path %q: %w", name, configured, err)
		}
		return configured, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	return path, nil
}

// Recognize rasterizes each page of the PDF at pdfPath to an image and runs
// tesseract over it, returning the concatenated page texts.
func (t *Tesseract) Recognize(ctx context.Context, pdfPath string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "uttar-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create OCR temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, t.pdftoppmPath, "-png", "-r", "300", pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm %s: %w: %s", pdfPath, err, strings.TrimSpace(string(out)))
	}

	pages, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", fmt.Errorf("list page images: %w", err)
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("pdftoppm produced no page images for %s", pdfPath)
	}
	sort.Strings(pages)

	var b strings.Builder
	for _, page := range pages {
		text, err := t.recognizePage(ctx, page)
		if err != nil {
			return "", err
		}
		b.WriteString(strings.TrimSpace(text))
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String()), nil
}

func (t *Tesseract) recognizePage(ctx context.Context, imagePath string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.tesseractPath, imagePath, "stdout", "-l", t.language)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract %s: %w: %s", imagePath, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
