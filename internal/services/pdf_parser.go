package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeExtractor converts a stored PDF into plain text for analysis.
// It returns a non-empty cleaned string or an extraction failure.
type ResumeExtractor interface {
	ExtractText(filePath string) (string, error)
}

type pdfResumeExtractor struct{}

func NewResumeExtractor() ResumeExtractor {
	return &pdfResumeExtractor{}
}

func (p *pdfResumeExtractor) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPages := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

// CleanText normalizes extracted PDF text: trims every line and collapses
// blank lines so downstream matching sees consistent whitespace.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
