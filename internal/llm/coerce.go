package llm

import (
	"strconv"
	"strings"
)

// invoiceDocument is the cleaned, fully defaulted form of one parsed
// response. Every field is populated even when the source JSON is partial.
type invoiceDocument struct {
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	Products        []productEntry
	TotalAmount     float64
	TaxAmount       float64
	InvoiceDate     string
	InvoiceNumber   string
}

type productEntry struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Total       float64
}

// coerceDocument walks an untrusted parsed object and reads every field
// independently with a fallback. Nested structure is never trusted: a missing
// or wrongly typed customer_details or products simply yields defaults.
func coerceDocument(parsed map[string]any) invoiceDocument {
	customer := asObject(parsed["customer_details"])

	var products []productEntry
	if list, ok := parsed["products"].([]any); ok {
		products = make([]productEntry, 0, len(list))
		for _, elem := range list {
			p := asObject(elem)
			products = append(products, productEntry{
				Description: asString(p["description"], "N/A"),
				Quantity:    asNumber(p["quantity"]),
				UnitPrice:   asNumber(p["unit_price"]),
				Total:       asNumber(p["total"]),
			})
		}
	}

	return invoiceDocument{
		CustomerName:    asString(customer["name"], "N/A"),
		CustomerAddress: asString(customer["address"], "N/A"),
		CustomerPhone:   asString(customer["phone"], "N/A"),
		Products:        products,
		TotalAmount:     asNumber(parsed["total_amount"]),
		TaxAmount:       asNumber(parsed["tax_amount"]),
		InvoiceDate:     asString(parsed["invoice_date"], "N/A"),
		InvoiceNumber:   asString(parsed["invoice_number"], "N/A"),
	}
}

// asObject returns v as a map, or nil for anything else. Reads from a nil
// map are safe, so callers index the result directly.
func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asString accepts strings and numbers; empty strings and zero numbers fall
// back, matching the prompt's absent-value convention ('N/A' or 0).
func asString(v any, fallback string) string {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return fallback
		}
		return t
	case float64:
		if t == 0 {
			return fallback
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fallback
	}
}

// asNumber coerces numbers and numeric strings; anything else is 0,
// never NaN and never an error.
func asNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
