package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uttarai/uttar/internal/extract"
)

// makeDocx builds a minimal .docx with one paragraph per argument.
func makeDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	docXML := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(docXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), content, 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.docx", makeDocx(t, "भारत की राजधानी दिल्ली है"))
	writeFile(t, dir, "b.docx", makeDocx(t, "गंगा एक नदी है"))
	writeFile(t, dir, "notes.txt", []byte("ignored"))

	l := New(extract.NewExtractor(), nil)
	docs, corpus, err := l.Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("docs: got %d, want 2", len(docs))
	}
	if !strings.Contains(corpus, "दिल्ली") || !strings.Contains(corpus, "गंगा") {
		t.Errorf("corpus missing document text: %q", corpus)
	}
}

func TestLoad_skipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.docx", makeDocx(t, "कुछ पाठ"))
	writeFile(t, dir, "bad.docx", []byte("not a zip"))
	writeFile(t, dir, "bad.pdf", []byte("not a pdf"))

	l := New(extract.NewExtractor(), nil)
	docs, corpus, err := l.Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != "good.docx" {
		t.Fatalf("docs: got %v", docs)
	}
	if corpus != "कुछ पाठ" {
		t.Errorf("corpus: got %q", corpus)
	}
}

func TestLoad_emptyCorpus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.docx", []byte("not a zip"))

	l := New(extract.NewExtractor(), nil)
	if _, _, err := l.Load(context.Background(), dir); err == nil {
		t.Error("expected error when no document yields text")
	}
}

func TestLoad_emptyDir(t *testing.T) {
	l := New(extract.NewExtractor(), nil)
	if _, _, err := l.Load(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error for directory with no documents")
	}
}

func TestLoad_missingDir(t *testing.T) {
	l := New(extract.NewExtractor(), nil)
	if _, _, err := l.Load(context.Background(), "/nonexistent/documents"); err == nil {
		t.Error("expected error for missing directory")
	}
}
