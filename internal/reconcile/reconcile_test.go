package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/extract"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/reconcile"
)

func TestReconcile_EmptyRows(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	for _, rows := range [][]extract.Row{nil, {}} {
		res := r.Reconcile(rows)
		require.True(t, res.IsError(), "zero rows must never yield a canonical result")
		assert.Contains(t, res.Err.Error, "No data found in the Excel file")
		assert.Contains(t, res.Err.Error, "Unexpected column names")
		assert.Equal(t, "No data found in the Excel file", res.Err.Details)
		assert.Nil(t, res.Data)
	}
}

func TestReconcile_AggregatesRepeatedCustomers(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	rows := []extract.Row{
		{"Customer Name": "Alice", "Product Name": "Widget", "Quantity": "2", "Total Amount": "100"},
		{"Customer Name": "Alice", "Product Name": "Gadget", "Quantity": "1", "Total Amount": "50"},
	}
	res := r.Reconcile(rows)
	require.False(t, res.IsError())

	require.Len(t, res.Data.Customers, 1)
	c := res.Data.Customers[0]
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "N/A", c.PhoneNumber)
	assert.Equal(t, 150.0, c.TotalPurchaseAmount)

	assert.Len(t, res.Data.Invoices, 2)
	assert.Len(t, res.Data.Products, 2)
}

func TestReconcile_AliasPrecedence(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	rows := []extract.Row{
		{"Invoice Number": "INV-A", "Serial_Number": "SER-1", "Customer Name": "Bob"},
		{"Serial_Number": "SER-2", "Customer_Name": "Carol", "Total": "75"},
	}
	res := r.Reconcile(rows)
	require.False(t, res.IsError())

	assert.Equal(t, "INV-A", res.Data.Invoices[0].SerialNumber, "first alias wins")
	assert.Equal(t, "SER-2", res.Data.Invoices[1].SerialNumber)
	assert.Equal(t, "Carol", res.Data.Invoices[1].CustomerName)
	assert.Equal(t, 75.0, res.Data.Invoices[1].TotalAmount, "Total is a valid alias for the total amount")
}

func TestReconcile_GeneratedSerialNumbers(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	rows := []extract.Row{
		{"Customer Name": "A"},
		{"Customer Name": "B"},
	}
	res := r.Reconcile(rows)
	require.False(t, res.IsError())
	assert.Equal(t, "INV-1", res.Data.Invoices[0].SerialNumber)
	assert.Equal(t, "INV-2", res.Data.Invoices[1].SerialNumber)
}

func TestReconcile_NumericCoercionNeverFails(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	rows := []extract.Row{
		{"Customer Name": "A", "Quantity": "three", "Tax": "", "Total Amount": "12.5", "Unit Price": "oops"},
	}
	res := r.Reconcile(rows)
	require.False(t, res.IsError())

	inv := res.Data.Invoices[0]
	assert.Equal(t, 0.0, inv.Quantity)
	assert.Equal(t, 0.0, inv.Tax)
	assert.Equal(t, 12.5, inv.TotalAmount)
	assert.Equal(t, 0.0, res.Data.Products[0].UnitPrice)
}

func TestReconcile_StringDefaults(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	res := r.Reconcile([]extract.Row{{"Quantity": "1"}})
	require.False(t, res.IsError())

	inv := res.Data.Invoices[0]
	assert.Equal(t, "N/A", inv.CustomerName)
	assert.Equal(t, "N/A", inv.ProductName)
	assert.Equal(t, "N/A", inv.Date)
	assert.Equal(t, "N/A", res.Data.Products[0].Discount)
}

func TestReconcile_FirstSeenPhoneRetained(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	rows := []extract.Row{
		{"Customer Name": "Dana", "Phone Number": "111", "Total Amount": "10"},
		{"Customer Name": "Dana", "Phone Number": "999", "Total Amount": "20"},
	}
	res := r.Reconcile(rows)
	require.False(t, res.IsError())

	require.Len(t, res.Data.Customers, 1)
	assert.Equal(t, "111", res.Data.Customers[0].PhoneNumber, "later rows must not overwrite non-numeric fields")
	assert.Equal(t, 30.0, res.Data.Customers[0].TotalPurchaseAmount)
}

func TestReconcile_CustomerOrderFollowsFirstInsertion(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	rows := []extract.Row{
		{"Customer Name": "Zoe", "Total Amount": "1"},
		{"Customer Name": "Amy", "Total Amount": "2"},
		{"Customer Name": "Zoe", "Total Amount": "3"},
	}
	res := r.Reconcile(rows)
	require.False(t, res.IsError())

	require.Len(t, res.Data.Customers, 2)
	assert.Equal(t, "Zoe", res.Data.Customers[0].Name)
	assert.Equal(t, "Amy", res.Data.Customers[1].Name)
	assert.Equal(t, 4.0, res.Data.Customers[0].TotalPurchaseAmount)
}

func TestReconcile_ExactNameMatchOnly(t *testing.T) {
	r := reconcile.NewReconciler(nil)

	rows := []extract.Row{
		{"Customer Name": "alice", "Total Amount": "10"},
		{"Customer Name": "Alice", "Total Amount": "20"},
		{"Customer Name": "Alice ", "Total Amount": "30"},
	}
	res := r.Reconcile(rows)
	require.False(t, res.IsError())
	assert.Len(t, res.Data.Customers, 3, "no case or whitespace normalization on the identity key")
}
