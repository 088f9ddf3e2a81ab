package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns the expected response shape as a JSON-Schema
// (draft 2020-12 subset) map. Types are deliberately loose — the service
// returns numbers as strings often enough that coercion, not the schema,
// owns type decisions. The schema check is advisory: a mismatch is logged,
// never fatal.
func BuildInvoiceJSONSchema() map[string]any {
	numberish := map[string]any{"type": []string{"number", "string"}}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"customer_details": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    map[string]any{"type": []string{"string", "number"}},
					"address": map[string]any{"type": []string{"string", "number"}},
					"phone":   map[string]any{"type": []string{"string", "number"}},
				},
			},
			"products": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": []string{"string", "number"}},
						"quantity":    numberish,
						"unit_price":  numberish,
						"total":       numberish,
					},
				},
			},
			"total_amount":   numberish,
			"tax_amount":     numberish,
			"invoice_date":   map[string]any{"type": []string{"string", "number"}},
			"invoice_number": map[string]any{"type": []string{"string", "number"}},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
