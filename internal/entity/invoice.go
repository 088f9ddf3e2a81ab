package entity

// Invoice is the row-level (tabular path) or document-level (unstructured
// path) summary record. ProductName and Quantity describe the primary product
// only; the full line-item list lives in the Products array of the result.
type Invoice struct {
	SerialNumber string  `json:"serialNumber"`
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     float64 `json:"quantity"`
	Tax          float64 `json:"tax"`
	TotalAmount  float64 `json:"totalAmount"`
	Date         string  `json:"date"`
}

// Product is one line item.
type Product struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Tax          float64 `json:"tax"`
	PriceWithTax float64 `json:"priceWithTax"`
	Discount     string  `json:"discount"`
}

// Customer is keyed by the exact name string; TotalPurchaseAmount accumulates
// across every invoice sharing that name within a single run.
type Customer struct {
	Name                string  `json:"name"`
	PhoneNumber         string  `json:"phoneNumber"`
	TotalPurchaseAmount float64 `json:"totalPurchaseAmount"`
}
