package reconcile

import (
	"strconv"
	"strings"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/extract"
)

// Header aliases per canonical field, in resolution order: first match wins.
// Adding support for a new naming convention means appending here, not
// touching the row loop.
var (
	serialAliases    = []string{"Invoice Number", "Serial Number", "Serial_Number"}
	customerAliases  = []string{"Customer Name", "Customer_Name"}
	productAliases   = []string{"Product Name", "Product_Name"}
	quantityAliases  = []string{"Quantity", "qty"}
	taxAliases       = []string{"Tax", "tax_amount"}
	totalAliases     = []string{"Total Amount", "Total_Amount", "Total"}
	dateAliases      = []string{"Date", "Invoice Date", "Invoice_Date"}
	unitPriceAliases = []string{"Unit Price", "Unit_Price"}
	phoneAliases     = []string{"Phone Number", "Phone_Number"}
	discountAliases  = []string{"Discount"}
)

// resolveString returns the first non-empty value among the aliases,
// or fallback. Empty cells count as absent.
func resolveString(row extract.Row, aliases []string, fallback string) string {
	for _, a := range aliases {
		if v, ok := row[a]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return fallback
}

// resolveNumber coerces the first matching cell to a number. Absent or
// non-parseable values yield 0, never an error.
func resolveNumber(row extract.Row, aliases []string) float64 {
	s := resolveString(row, aliases, "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
