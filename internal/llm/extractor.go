package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/entity"
)

// User-facing messages for the two failure kinds of this stage. Upstream call
// failure and malformed response are distinct: the first never produced text,
// the second produced text we keep for inspection.
const (
	upstreamFailureMessage = "Advanced AI extraction failed. Please check the file quality."
	parseFailureMessage    = "Failed to parse detailed invoice information."
)

// Extractor is the unstructured path: raw document text in, canonical result
// out. The external service response is treated as adversarial input.
type Extractor struct {
	gen    TextGenerator
	logger *slog.Logger
}

func NewExtractor(gen TextGenerator, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{gen: gen, logger: logger}
}

// Extract sends the fixed-schema prompt, strips markdown fencing from the
// response, parses and coerces it, and maps the single extracted invoice into
// the canonical shape. All failures come back as error results.
func (x *Extractor) Extract(ctx context.Context, rawText string) entity.Result {
	rid := uuid.New().String()
	start := time.Now()

	x.logger.Info("llm.extract.start", "req_id", rid, "text_len", len(rawText))

	resp, err := x.gen.GenerateText(ctx, BuildExtractionPrompt(rawText))
	if err != nil {
		x.logger.Error("llm.extract.upstream_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.FailRaw(upstreamFailureMessage, err.Error())
	}

	stripped := StripCodeFence(resp)

	var parsed map[string]any
	if uerr := json.Unmarshal([]byte(stripped), &parsed); uerr != nil || parsed == nil {
		x.logger.Error("llm.extract.malformed_response",
			"req_id", rid, "error", uerr, "raw_bytes", len(stripped),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.FailRaw(parseFailureMessage, stripped)
	}

	// Advisory only. Coercion below reads every field defensively, so a
	// shape mismatch is worth a log line, not a rejection.
	if verr := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), []byte(stripped)); verr != nil {
		x.logger.Warn("llm.extract.schema_mismatch", "req_id", rid, "error", verr)
	}

	doc := coerceDocument(parsed)

	// The Invoice summary carries the first product only; the Products array
	// stays complete. Tax on each product is the invoice-level amount: the
	// response schema has no per-product tax.
	inv := entity.Invoice{
		SerialNumber: doc.InvoiceNumber,
		CustomerName: doc.CustomerName,
		ProductName:  "N/A",
		Quantity:     0,
		Tax:          doc.TaxAmount,
		TotalAmount:  doc.TotalAmount,
		Date:         doc.InvoiceDate,
	}
	if len(doc.Products) > 0 {
		inv.ProductName = doc.Products[0].Description
		inv.Quantity = doc.Products[0].Quantity
	}

	products := make([]entity.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		products = append(products, entity.Product{
			Name:         p.Description,
			Quantity:     p.Quantity,
			UnitPrice:    p.UnitPrice,
			Tax:          doc.TaxAmount,
			PriceWithTax: p.Total,
			Discount:     "N/A",
		})
	}

	x.logger.Info("llm.extract.ok",
		"req_id", rid,
		"invoice_number", doc.InvoiceNumber,
		"customer", doc.CustomerName,
		"products", len(products),
		"total", doc.TotalAmount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return entity.OK(entity.Canonical{
		Invoices: []entity.Invoice{inv},
		Products: products,
		Customers: []entity.Customer{{
			Name:                doc.CustomerName,
			PhoneNumber:         doc.CustomerPhone,
			TotalPurchaseAmount: doc.TotalAmount,
		}},
	})
}
