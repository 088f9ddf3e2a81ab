package extract

import (
	"context"
	"time"
)

// TextExtractor is stage 1 of the unstructured path: file -> raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextResult, error)
}

type TextResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "image-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}

// Row is one spreadsheet record, keyed by the source column headers.
type Row map[string]string

// RowReader is stage 1 of the tabular path: file -> loosely typed rows.
type RowReader interface {
	Read(ctx context.Context, path string) ([]Row, error)
}
