// Package pdftext extracts per-page text from PDF files.
//
// Only the embedded text layer is read; scanned (image-only) PDFs yield
// no pages and require OCR upstream.
package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/text/unicode/norm"

	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/logging"
)

// Extractor reads page text out of PDF files.
type Extractor struct {
	logger logging.Logger
}

// New creates a PDF text extractor.
func New(logger logging.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// PageCount returns the number of pages in the PDF at path.
func (e *Extractor) PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count for %s: %w", path, err)
	}
	return count, nil
}

// ExtractPages reads every page of the PDF at path and returns the pages
// that contain text. Pages that fail to extract are logged and skipped so
// one broken page does not sink the whole book.
func (e *Extractor) ExtractPages(path string) ([]domain.PageText, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read PDF %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	var pages []domain.PageText

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, pageErr := extractPageText(page)
		if pageErr != nil {
			e.logger.Warn("skipping unreadable page",
				logging.String("path", path),
				logging.Int("page", i),
				logging.Error(pageErr))
			continue
		}

		text = Normalize(text)
		if text == "" {
			continue
		}
		pages = append(pages, domain.PageText{Number: i, Text: text})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from %s: it may be scanned or image-based", path)
	}

	e.logger.Info("extracted pdf text",
		logging.String("path", path),
		logging.Int("pages_total", numPages),
		logging.Int("pages_with_text", len(pages)))
	return pages, nil
}

// extractPageText reads one page row by row so that line structure
// survives; GetPlainText runs words together across lines.
func extractPageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			sb.WriteString(word.S)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Normalize canonicalizes extracted text: NFC form, regular spaces,
// trimmed lines, collapsed blank runs.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.NewReplacer(
		"\r\n", "\n",
		"\r", "\n",
		" ", " ",
		" ", "\n",
	).Replace(text)

	var lines []string
	blank := true
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		lines = append(lines, strings.Join(strings.Fields(line), " "))
		blank = false
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
