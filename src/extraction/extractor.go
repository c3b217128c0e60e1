package extraction

import (
	"bytes"
	"fmt"

	"github.com/dslipak/pdf"
)

// TextExtractor converts one file into its plain text content. Extraction
// failure is fatal for that single file only; callers catch it, log the
// filename and move on.
type TextExtractor interface {
	Extract(path string) (string, error)
}

type pdfExtractor struct{}

// NewPDFExtractor returns the PDF-backed TextExtractor.
func NewPDFExtractor() TextExtractor {
	return pdfExtractor{}
}

func (pdfExtractor) Extract(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	content, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("reading extracted text of %s: %w", path, err)
	}
	return buf.String(), nil
}
