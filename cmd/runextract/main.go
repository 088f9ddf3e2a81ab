package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/common"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/extract"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/llm"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/llm/gemini"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/pipeline"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/reconcile"
)

// runextract processes a single file through the pipeline and prints the
// JSON result to stdout. Useful for debugging extraction without the HTTP
// layer in the way.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("creating gemini client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := gen.Close(); cerr != nil {
			logger.Error("closing gemini client", "error", cerr)
		}
	}()

	proc := pipeline.NewProcessor(
		logger,
		extract.NewPDFExtractor(logger),
		extract.NewTesseractExtractor(extract.TesseractConfig{
			Binary:      cfg.OCR.Tesseract,
			Language:    cfg.OCR.Language,
			TessdataDir: cfg.OCR.TessdataDir,
		}, logger),
		extract.NewSpreadsheetReader(logger),
		llm.NewExtractor(gen, logger),
		reconcile.NewReconciler(logger),
	)

	result := proc.ProcessInvoice(ctx, path)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if result.IsError() {
		os.Exit(1)
	}
}
