package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/common"
)

// TesseractConfig configures the OCR adapter. The language profile is fixed
// per deployment; there is no per-request language detection.
type TesseractConfig struct {
	Binary      string // binary name or absolute path; if empty -> "tesseract"
	Language    string // default "eng"
	TessdataDir string
}

// TesseractExtractor OCRs a single image file through the tesseract binary.
type TesseractExtractor struct {
	cfg    TesseractConfig
	runner Runner
	logger *slog.Logger
}

func NewTesseractExtractor(cfg TesseractConfig, logger *slog.Logger) *TesseractExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &TesseractExtractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

func (e *TesseractExtractor) Extract(ctx context.Context, path string) (TextResult, error) {
	start := time.Now()

	args := []string{path, "stdout", "-l", e.cfg.Language}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Binary, args...)
	if err != nil {
		return TextResult{Warnings: []string{string(errb)}},
			common.NewAppError(common.CodeExtractionFailure, fmt.Sprintf("tesseract on %s", path), err)
	}

	res := TextResult{
		Text:     string(out),
		Pages:    1,
		Method:   "image-ocr",
		Language: e.cfg.Language,
		Duration: time.Since(start),
	}
	e.logger.Debug("extract.ocr.ok",
		"path", path,
		"bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
