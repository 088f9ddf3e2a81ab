package reconcile

import (
	"fmt"
	"log/slog"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/entity"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/extract"
)

const noDataMessage = "No data found in the Excel file"

// tabularFailureFormat is the user-facing envelope for tabular-path failures.
const tabularFailureFormat = `Excel File Processing Failed: %s.
Possible reasons:
- Incorrect file format
- Unexpected column names
- Empty or incorrectly formatted spreadsheet`

// Failure wraps a tabular-path failure message in the user-facing envelope,
// keeping the underlying message as details.
func Failure(msg string) entity.Result {
	return entity.Fail(fmt.Sprintf(tabularFailureFormat, msg), msg)
}

// Reconciler maps arbitrarily named spreadsheet columns onto the canonical
// invoice/product/customer fields and aggregates per-customer totals.
type Reconciler struct {
	logger *slog.Logger
}

func NewReconciler(logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{logger: logger}
}

// Reconcile converts loosely typed rows into the canonical result. It never
// returns an unhandled failure: zero rows and row-processing panics both come
// back as error results.
func (r *Reconciler) Reconcile(rows []extract.Row) (res entity.Result) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("reconcile.panic", "panic", p)
			res = Failure(fmt.Sprint(p))
		}
	}()

	if len(rows) == 0 {
		r.logger.Warn("reconcile.empty_dataset")
		return Failure(noDataMessage)
	}

	invoices := make([]entity.Invoice, 0, len(rows))
	products := make([]entity.Product, 0, len(rows))
	byName := make(map[string]*entity.Customer, len(rows))
	var order []string

	for i, row := range rows {
		inv := entity.Invoice{
			SerialNumber: resolveString(row, serialAliases, fmt.Sprintf("INV-%d", i+1)),
			CustomerName: resolveString(row, customerAliases, "N/A"),
			ProductName:  resolveString(row, productAliases, "N/A"),
			Quantity:     resolveNumber(row, quantityAliases),
			Tax:          resolveNumber(row, taxAliases),
			TotalAmount:  resolveNumber(row, totalAliases),
			Date:         resolveString(row, dateAliases, "N/A"),
		}
		invoices = append(invoices, inv)

		products = append(products, entity.Product{
			Name:         inv.ProductName,
			Quantity:     inv.Quantity,
			UnitPrice:    resolveNumber(row, unitPriceAliases),
			Tax:          inv.Tax,
			PriceWithTax: inv.TotalAmount,
			Discount:     resolveString(row, discountAliases, "N/A"),
		})

		// Exact-name aggregation: sum totals, keep first-seen secondary fields.
		if existing, ok := byName[inv.CustomerName]; ok {
			existing.TotalPurchaseAmount += inv.TotalAmount
			continue
		}
		byName[inv.CustomerName] = &entity.Customer{
			Name:                inv.CustomerName,
			PhoneNumber:         resolveString(row, phoneAliases, "N/A"),
			TotalPurchaseAmount: inv.TotalAmount,
		}
		order = append(order, inv.CustomerName)
	}

	customers := make([]entity.Customer, 0, len(order))
	for _, name := range order {
		customers = append(customers, *byName[name])
	}

	r.logger.Info("reconcile.ok",
		"rows", len(rows),
		"invoices", len(invoices),
		"customers", len(customers),
	)
	return entity.OK(entity.Canonical{
		Invoices:  invoices,
		Products:  products,
		Customers: customers,
	})
}
