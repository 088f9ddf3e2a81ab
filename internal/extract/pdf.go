package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gen2brain/go-fitz"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/common"
)

// PDFExtractor pulls the embedded text layer out of a PDF. Scanned PDFs with
// no text layer yield an empty string, which the caller forwards to the
// semantic extractor as-is.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextResult, error) {
	start := time.Now()

	doc, err := fitz.New(path)
	if err != nil {
		e.logger.Error("extract.pdf.open_failed", "path", path, "error", err)
		return TextResult{}, common.NewAppError(common.CodeExtractionFailure, "open pdf", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			e.logger.Warn("extract.pdf.close_failed", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	var warns []string
	pages := doc.NumPage()
	for i := 0; i < pages; i++ {
		if err := ctx.Err(); err != nil {
			return TextResult{}, err
		}
		txt, err := doc.Text(i)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
	}

	res := TextResult{
		Text:     b.String(),
		Pages:    pages,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warns,
	}
	e.logger.Debug("extract.pdf.ok",
		"path", path,
		"pages", pages,
		"bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
