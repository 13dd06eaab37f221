package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the direct (non-OCR) text of a PDF. Pages that cannot
// be decoded are skipped so one bad page does not lose the document; a PDF
// with no extractable text at all returns an empty string, which signals
// the caller to try OCR.
func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
