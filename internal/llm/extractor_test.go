package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/llm"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const fullResponse = `{
	"customer_details": {"name": "Acme Corp", "address": "1 Main St", "phone": "555-0100"},
	"products": [
		{"description": "Widget", "quantity": 2, "unit_price": 40, "total": 88},
		{"description": "Gadget", "quantity": 1, "unit_price": 100, "total": 110}
	],
	"total_amount": 198,
	"tax_amount": 18,
	"invoice_date": "2024-03-01",
	"invoice_number": "INV-77"
}`

func TestExtract_FullDocument(t *testing.T) {
	gen := &stubGenerator{response: fullResponse}
	x := llm.NewExtractor(gen, nil)

	res := x.Extract(context.Background(), "some invoice text")
	require.False(t, res.IsError())

	require.Len(t, res.Data.Invoices, 1)
	inv := res.Data.Invoices[0]
	assert.Equal(t, "INV-77", inv.SerialNumber)
	assert.Equal(t, "Acme Corp", inv.CustomerName)
	assert.Equal(t, "Widget", inv.ProductName, "invoice summary carries the first product only")
	assert.Equal(t, 2.0, inv.Quantity)
	assert.Equal(t, 18.0, inv.Tax)
	assert.Equal(t, 198.0, inv.TotalAmount)
	assert.Equal(t, "2024-03-01", inv.Date)

	require.Len(t, res.Data.Products, 2)
	assert.Equal(t, "Gadget", res.Data.Products[1].Name)
	assert.Equal(t, 110.0, res.Data.Products[1].PriceWithTax)
	assert.Equal(t, 18.0, res.Data.Products[0].Tax, "product tax is the invoice-level amount")
	assert.Equal(t, 18.0, res.Data.Products[1].Tax)
	assert.Equal(t, "N/A", res.Data.Products[0].Discount)

	require.Len(t, res.Data.Customers, 1)
	assert.Equal(t, "555-0100", res.Data.Customers[0].PhoneNumber)
	assert.Equal(t, 198.0, res.Data.Customers[0].TotalPurchaseAmount)
}

func TestExtract_FenceRoundTrip(t *testing.T) {
	bare := &stubGenerator{response: fullResponse}
	fenced := &stubGenerator{response: "```json\n" + fullResponse + "\n```"}

	a := llm.NewExtractor(bare, nil).Extract(context.Background(), "text")
	b := llm.NewExtractor(fenced, nil).Extract(context.Background(), "text")

	require.False(t, a.IsError())
	require.False(t, b.IsError())
	assert.Equal(t, a.Data, b.Data, "fenced and bare responses must reconcile identically")
}

func TestExtract_EmptyProducts(t *testing.T) {
	gen := &stubGenerator{response: `{"customer_details":{"name":"Bob"},"products":[],"total_amount":200}`}
	x := llm.NewExtractor(gen, nil)

	res := x.Extract(context.Background(), "text")
	require.False(t, res.IsError())

	require.Len(t, res.Data.Invoices, 1)
	inv := res.Data.Invoices[0]
	assert.Equal(t, "N/A", inv.ProductName)
	assert.Equal(t, 0.0, inv.Quantity)
	assert.Equal(t, 200.0, inv.TotalAmount)
	assert.Equal(t, "N/A", inv.SerialNumber)
	assert.Equal(t, "N/A", inv.Date)

	assert.Empty(t, res.Data.Products)

	require.Len(t, res.Data.Customers, 1)
	assert.Equal(t, "Bob", res.Data.Customers[0].Name)
	assert.Equal(t, "N/A", res.Data.Customers[0].PhoneNumber)
	assert.Equal(t, 200.0, res.Data.Customers[0].TotalPurchaseAmount)
}

func TestExtract_MalformedResponse(t *testing.T) {
	gen := &stubGenerator{response: "```json\nI could not read this document\n```"}
	x := llm.NewExtractor(gen, nil)

	res := x.Extract(context.Background(), "text")
	require.True(t, res.IsError())
	assert.Equal(t, "Failed to parse detailed invoice information.", res.Err.Error)
	assert.Equal(t, "I could not read this document", res.Err.RawResponse,
		"raw_response must be the fence-stripped text")
	assert.Nil(t, res.Data, "no partial canonical fields on parse failure")
}

func TestExtract_NullResponseIsMalformed(t *testing.T) {
	gen := &stubGenerator{response: "null"}
	x := llm.NewExtractor(gen, nil)

	res := x.Extract(context.Background(), "text")
	require.True(t, res.IsError())
	assert.Equal(t, "Failed to parse detailed invoice information.", res.Err.Error)
}

func TestExtract_UpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exhausted")}
	x := llm.NewExtractor(gen, nil)

	res := x.Extract(context.Background(), "text")
	require.True(t, res.IsError())
	assert.Equal(t, "Advanced AI extraction failed. Please check the file quality.", res.Err.Error)
	assert.Equal(t, "quota exhausted", res.Err.RawResponse)
}

func TestExtract_CoercesLooseTypes(t *testing.T) {
	gen := &stubGenerator{response: `{
		"customer_details": "not an object",
		"products": [{"description": "Thing", "quantity": "3", "unit_price": "9.50"}, "noise"],
		"total_amount": "200.50",
		"tax_amount": null,
		"invoice_number": 42
	}`}
	x := llm.NewExtractor(gen, nil)

	res := x.Extract(context.Background(), "text")
	require.False(t, res.IsError())

	inv := res.Data.Invoices[0]
	assert.Equal(t, "42", inv.SerialNumber)
	assert.Equal(t, "N/A", inv.CustomerName, "wrongly typed nesting falls back to defaults")
	assert.Equal(t, 200.5, inv.TotalAmount)
	assert.Equal(t, 0.0, inv.Tax)

	require.Len(t, res.Data.Products, 2)
	assert.Equal(t, 3.0, res.Data.Products[0].Quantity)
	assert.Equal(t, 9.5, res.Data.Products[0].UnitPrice)
	assert.Equal(t, "N/A", res.Data.Products[1].Name, "non-object list entries coerce to defaults")
}

func TestExtract_PromptCarriesDocumentText(t *testing.T) {
	gen := &stubGenerator{response: fullResponse}
	x := llm.NewExtractor(gen, nil)

	x.Extract(context.Background(), "UNIQUE-DOCUMENT-MARKER")
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "UNIQUE-DOCUMENT-MARKER")
	assert.Contains(t, gen.prompts[0], `"customer_details"`)
	assert.Contains(t, gen.prompts[0], `"invoice_number"`)
}
