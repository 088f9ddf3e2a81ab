package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/common"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/extract"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/llm"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/llm/gemini"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/pipeline"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/reconcile"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(proc, cfg.Server.UploadDir, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if serr := srv.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			logger.Error("http serve", "error", serr)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		logger.Error("http shutdown", "error", serr)
	}
}
