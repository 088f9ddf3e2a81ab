package llm

import "strings"

// extractionPromptHeader is the fixed instruction block sent with every
// request. The schema is spelled out verbatim; missing fields must come back
// as 'N/A' or 0 so the coercion layer stays simple.
const extractionPromptHeader = `Comprehensively Extract Invoice Details:
- Strictly follow this JSON structure
- If any field is not found, use 'N/A' or 0
- Analyze the text carefully and extract maximum possible details

Required JSON Structure:
{
    "customer_details": {
        "name": "Customer Full Name",
        "address": "Complete Address",
        "phone": "Phone Number (if available)"
    },
    "products": [
        {
            "description": "Product Name/Description",
            "quantity": number,
            "unit_price": number,
            "total": number
        }
    ],
    "total_amount": number,
    "tax_amount": number,
    "invoice_date": "Date of Invoice",
    "invoice_number": "Invoice Serial Number"
}

Here's the invoice text to extract details from:
`

// BuildExtractionPrompt appends the raw document text to the fixed
// instruction block.
func BuildExtractionPrompt(text string) string {
	var b strings.Builder
	b.Grow(len(extractionPromptHeader) + len(text))
	b.WriteString(extractionPromptHeader)
	b.WriteString(text)
	return b.String()
}
