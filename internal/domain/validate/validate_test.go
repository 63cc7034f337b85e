package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/document-intelligence/internal/domain/document"
)

func submittableInvoice() *document.Invoice {
	inv := &document.Invoice{
		InvoiceID:    "INV-2026-001",
		CompanyName:  "DEMO",
		CustomerName: "Test Customer",
		InvoiceDate:  "2026-01-29",
		DueDate:      "2026-02-28",
		Items: []document.InvoiceItem{
			{Description: "Test Item 1", Category: "Electronics", Quantity: 2, Rate: 100},
		},
	}
	inv.Recalculate()
	return inv
}

func submittablePO() *document.PurchaseOrder {
	po := &document.PurchaseOrder{
		PONumber:     "PO-2026-00001",
		OrderDate:    "2026-01-29",
		DeliveryDate: "2026-02-15",
		SupplierName: "ABC Supplier",
		CompanyName:  "My Company",
		Status:       document.POStatusDraft,
		Items: []document.PurchaseOrderItem{
			{ItemCode: "ITEM-001", Description: "Steel Rod", Quantity: 10, UnitPrice: 25},
		},
	}
	po.Recalculate()
	return po
}

func TestInvoice_Valid(t *testing.T) {
	assert.NoError(t, Invoice(submittableInvoice()))
}

func TestInvoice_MissingCompany(t *testing.T) {
	inv := submittableInvoice()
	inv.CompanyName = ""

	err := Invoice(inv)
	require.Error(t, err)
	assert.Equal(t, MsgInvoiceCompanyRequired, err.Error())
}

func TestInvoice_MissingCustomer(t *testing.T) {
	inv := submittableInvoice()
	inv.CustomerName = ""

	err := Invoice(inv)
	require.Error(t, err)
	assert.Equal(t, MsgCustomerRequired, err.Error())
}

func TestInvoice_ZeroQuantity(t *testing.T) {
	inv := submittableInvoice()
	require.NoError(t, inv.SetItemQuantity(0, 0))

	err := Invoice(inv)
	require.Error(t, err)
	assert.Equal(t, "Item 1: Quantity must be greater than zero", err.Error())
}

func TestInvoice_QuantityMessageUsesOneBasedIndex(t *testing.T) {
	inv := submittableInvoice()
	inv.Items = append(inv.Items, document.InvoiceItem{Description: "Second", Quantity: 0, Rate: 10})
	inv.Recalculate()

	err := Invoice(inv)
	require.Error(t, err)
	assert.Equal(t, "Item 2: Quantity must be greater than zero", err.Error())
}

// Priority order is part of the contract: missing company always wins over
// every other violation.
func TestInvoice_FirstViolationWins(t *testing.T) {
	inv := submittableInvoice()
	inv.CompanyName = ""
	inv.CustomerName = ""
	require.NoError(t, inv.SetItemQuantity(0, 0))

	err := Invoice(inv)
	require.Error(t, err)
	assert.Equal(t, MsgInvoiceCompanyRequired, err.Error())
}

func TestInvoice_EmptyItemsIsSubmittable(t *testing.T) {
	inv := submittableInvoice()
	inv.Items = nil
	inv.Recalculate()

	assert.NoError(t, Invoice(inv))
}

func TestPurchaseOrder_Valid(t *testing.T) {
	assert.NoError(t, PurchaseOrder(submittablePO()))
}

func TestPurchaseOrder_MissingCompany(t *testing.T) {
	po := submittablePO()
	po.CompanyName = ""

	err := PurchaseOrder(po)
	require.Error(t, err)
	assert.Equal(t, MsgPOCompanyRequired, err.Error())
}

func TestPurchaseOrder_MissingSupplier(t *testing.T) {
	po := submittablePO()
	po.SupplierName = ""

	err := PurchaseOrder(po)
	require.Error(t, err)
	assert.Equal(t, MsgSupplierRequired, err.Error())
}

func TestPurchaseOrder_ZeroQuantity(t *testing.T) {
	po := submittablePO()
	require.NoError(t, po.SetItemQuantity(0, 0))

	err := PurchaseOrder(po)
	require.Error(t, err)
	assert.Equal(t, "Item 1: Quantity must be greater than zero", err.Error())
}

func TestPurchaseOrder_DeliveryDate(t *testing.T) {
	tests := []struct {
		name         string
		orderDate    string
		deliveryDate string
		wantMsg      string
	}{
		{"missing delivery date", "2026-01-29", "", MsgDeliveryDateRequired},
		{"delivery before order", "2026-01-29", "2026-01-01", MsgDeliveryBeforeOrder},
		{"delivery equals order", "2026-01-29", "2026-01-29", ""},
		{"delivery after order", "2026-01-29", "2026-02-15", ""},
		{"unparseable order date is not compared", "?", "2026-02-15", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			po := submittablePO()
			po.OrderDate = tt.orderDate
			po.DeliveryDate = tt.deliveryDate

			err := PurchaseOrder(po)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

// Supplier presence outranks the quantity and delivery-date rules.
func TestPurchaseOrder_PriorityOrder(t *testing.T) {
	po := submittablePO()
	po.SupplierName = ""
	po.DeliveryDate = ""
	require.NoError(t, po.SetItemQuantity(0, 0))

	err := PurchaseOrder(po)
	require.Error(t, err)
	assert.Equal(t, MsgSupplierRequired, err.Error())
}
