package ocr

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/uttarai/uttar/internal/config"
)

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0700); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLocate_configuredPaths(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not runnable on windows")
	}
	dir := t.TempDir()
	tess := writeScript(t, dir, "tesseract", "exit 0\n")
	ppm := writeScript(t, dir, "pdftoppm", "exit 0\n")

	engine, err := Locate(config.OCRConfig{TesseractPath: tess, PdftoppmPath: ppm})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if engine.language != "hin" {
		t.Errorf("language default: got %q", engine.language)
	}
}

func TestLocate_missingConfiguredTool(t *testing.T) {
	dir := t.TempDir()
	_, err := Locate(config.OCRConfig{
		TesseractPath: filepath.Join(dir, "no-such-tesseract"),
		PdftoppmPath:  filepath.Join(dir, "no-such-pdftoppm"),
	})
	if err == nil {
		t.Error("expected error for missing configured tool")
	}
}

func TestRecognize(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not runnable on windows")
	}
	dir := t.TempDir()
	// Fake pdftoppm: last arg is the output prefix, write two page images.
	ppm := writeScript(t, dir, "pdftoppm", `
for last in "$@"; do :; done
touch "${last}-1.png" "${last}-2.png"
`)
	// Fake tesseract: echo a fixed line per page image.
	tess := writeScript(t, dir, "tesseract", `echo "recognized $1"`)

	engine, err := Locate(config.OCRConfig{TesseractPath: tess, PdftoppmPath: ppm, Language: "hin"})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	got, err := engine.Recognize(context.Background(), filepath.Join(dir, "scan.pdf"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if got == "" {
		t.Fatal("Recognize returned empty text")
	}
	// Two pages, one line each.
	if want := 2; len(splitLines(got)) != want {
		t.Errorf("pages: got %d lines (%q), want %d", len(splitLines(got)), got, want)
	}
}

func TestRecognize_pdftoppmFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not runnable on windows")
	}
	dir := t.TempDir()
	ppm := writeScript(t, dir, "pdftoppm", "echo broken >&2\nexit 1\n")
	tess := writeScript(t, dir, "tesseract", "exit 0\n")

	engine, err := Locate(config.OCRConfig{TesseractPath: tess, PdftoppmPath: ppm})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if _, err := engine.Recognize(context.Background(), "in.pdf"); err == nil {
		t.Error("expected error when pdftoppm fails")
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
