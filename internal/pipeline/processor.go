package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Satyam2192/Invoice-Viewer-Backend/constants"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/entity"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/extract"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/reconcile"
)

// processingFailureFormat is the outermost user-facing error envelope. Every
// failure that reaches the caller goes through it exactly once.
const processingFailureFormat = `Invoice Processing Failed: %s.
Possible reasons:
- Unclear or low-quality document
- Unsupported document format
- Extraction limitations`

// SemanticExtractor is the unstructured path: raw text -> canonical result.
type SemanticExtractor interface {
	Extract(ctx context.Context, rawText string) entity.Result
}

// TabularReconciler is the tabular path: rows -> canonical result.
type TabularReconciler interface {
	Reconcile(rows []extract.Row) entity.Result
}

// Processor dispatches an uploaded file to the correct extraction path and is
// the outermost recovery boundary: no failure leaves ProcessInvoice as
// anything but an error result.
type Processor struct {
	logger   *slog.Logger
	pdf      extract.TextExtractor
	image    extract.TextExtractor
	rows     extract.RowReader
	semantic SemanticExtractor
	tabular  TabularReconciler
}

func NewProcessor(
	logger *slog.Logger,
	pdf, image extract.TextExtractor,
	rows extract.RowReader,
	semantic SemanticExtractor,
	tabular TabularReconciler,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:   logger,
		pdf:      pdf,
		image:    image,
		rows:     rows,
		semantic: semantic,
		tabular:  tabular,
	}
}

// ProcessInvoice runs one file through the pipeline. Dispatch is strictly by
// extension; unknown extensions fail before any extraction is attempted.
func (p *Processor) ProcessInvoice(ctx context.Context, path string) (res entity.Result) {
	runID := uuid.New().String()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline.panic", "run_id", runID, "panic", r)
			res = wrapFailure(fmt.Sprint(r), fmt.Sprint(r))
		}
	}()

	ext := filepath.Ext(path)
	format := constants.MapExtToFormat(ext)
	p.logger.Info("pipeline.dispatch",
		"run_id", runID,
		"file", filepath.Base(path),
		"format", string(format),
		"stage", string(constants.StageDispatch),
	)

	var inner entity.Result
	switch format {
	case constants.PDF:
		inner = p.unstructured(ctx, runID, p.pdf, path)
	case constants.IMAGE:
		inner = p.unstructured(ctx, runID, p.image, path)
	case constants.SPREADSHEET:
		inner = p.tabularPath(ctx, runID, path)
	default:
		p.logger.Warn("pipeline.unsupported_format", "run_id", runID, "ext", ext)
		return wrapFailure("Unsupported file type", "unsupported extension: "+ext)
	}

	if inner.IsError() {
		p.logger.Error("pipeline.failed",
			"run_id", runID,
			"stage", string(constants.StageFailed),
			"error", inner.Err.Error,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return wrapFailure(inner.Err.Error, rawFailureText(inner.Err))
	}

	p.logger.Info("pipeline.ok",
		"run_id", runID,
		"stage", string(constants.StageDone),
		"invoices", len(inner.Data.Invoices),
		"products", len(inner.Data.Products),
		"customers", len(inner.Data.Customers),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return inner
}

func (p *Processor) unstructured(ctx context.Context, runID string, tx extract.TextExtractor, path string) entity.Result {
	p.logger.Debug("pipeline.extracting", "run_id", runID, "stage", string(constants.StageExtracting))
	res, err := tx.Extract(ctx, path)
	if err != nil {
		return entity.Fail(err.Error(), err.Error())
	}
	// Empty text is not an error here: a blank or unreadable page is the
	// semantic extractor's problem to report.
	p.logger.Debug("pipeline.reconciling", "run_id", runID, "stage", string(constants.StageReconciling))
	return p.semantic.Extract(ctx, res.Text)
}

func (p *Processor) tabularPath(ctx context.Context, runID string, path string) entity.Result {
	p.logger.Debug("pipeline.extracting", "run_id", runID, "stage", string(constants.StageExtracting))
	rows, err := p.rows.Read(ctx, path)
	if err != nil {
		return reconcile.Failure(err.Error())
	}
	p.logger.Debug("pipeline.reconciling", "run_id", runID, "stage", string(constants.StageReconciling))
	return p.tabular.Reconcile(rows)
}

// wrapFailure normalizes an inner failure into the top-level envelope,
// preserving the inner message and the raw failure text.
func wrapFailure(msg, details string) entity.Result {
	return entity.Fail(fmt.Sprintf(processingFailureFormat, msg), details)
}

// rawFailureText picks the most useful diagnostic string off an inner error.
func rawFailureText(e *entity.ErrorResult) string {
	if e.Details != "" {
		return e.Details
	}
	if e.RawResponse != "" {
		return e.RawResponse
	}
	return e.Error
}
