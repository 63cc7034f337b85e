package document

import (
	"errors"
	"testing"

	"github.com/docuflow/document-intelligence/internal/extraction"
)

func invoiceFixture() *extraction.InvoiceData {
	return &extraction.InvoiceData{
		InvoiceID:               "INV-2026-001",
		VendorName:              "Test Customer",
		InvoiceDate:             "2026-01-29",
		DueDate:                 "2026-02-28",
		BillingAddressRecipient: "Test Customer",
		ShippingAddress:         "123 Test St",
		SubTotal:                999.99, // deliberately wrong, must be recomputed
		ShippingCost:            15,
		Tax:                     35,
		InvoiceTotal:            1,
		Items: []extraction.InvoiceItemData{
			{Description: "Test Item 1", Category: "Electronics", Quantity: 2, Rate: 100, Amount: 0},
		},
	}
}

func poFixture() *extraction.PurchaseOrderData {
	return &extraction.PurchaseOrderData{
		PONumber:     "PO-2026-00001",
		Date:         "2026-01-29",
		DeliveryDate: "2026-02-15",
		SupplierName: "ABC Supplier",
		CompanyName:  "My Company",
		Currency:     "USD",
		TotalAmount:  0, // deliberately wrong, must be recomputed
		Status:       "Draft",
		Items: []extraction.PurchaseOrderItemData{
			{ItemCode: "ITEM-001", Description: "Steel Rod", Quantity: 10, UnitPrice: 25},
			{ItemCode: "ITEM-002", Description: "Copper Wire", Quantity: 5, UnitPrice: 8.5},
		},
	}
}

func TestNewInvoiceFromExtraction_DerivesTotals(t *testing.T) {
	inv := NewInvoiceFromExtraction(invoiceFixture())

	if inv.Items[0].Amount != 200 {
		t.Errorf("item amount = %v, want 200", inv.Items[0].Amount)
	}
	if inv.Subtotal != 200 {
		t.Errorf("subtotal = %v, want 200 (extraction's SubTotal must be ignored)", inv.Subtotal)
	}
	if inv.Total != 250 {
		t.Errorf("total = %v, want 250", inv.Total)
	}
	if inv.CustomerName != "Test Customer" {
		t.Errorf("customer name = %q, want %q", inv.CustomerName, "Test Customer")
	}
}

func TestInvoice_EditRecomputes(t *testing.T) {
	inv := NewInvoiceFromExtraction(invoiceFixture())

	if err := inv.SetItemQuantity(0, 3); err != nil {
		t.Fatalf("SetItemQuantity() failed: %v", err)
	}
	if inv.Items[0].Amount != 300 || inv.Subtotal != 300 || inv.Total != 350 {
		t.Errorf("after quantity edit: amount=%v subtotal=%v total=%v, want 300/300/350",
			inv.Items[0].Amount, inv.Subtotal, inv.Total)
	}

	if err := inv.SetItemRate(0, 50); err != nil {
		t.Fatalf("SetItemRate() failed: %v", err)
	}
	if inv.Total != 200 {
		t.Errorf("after rate edit: total = %v, want 200", inv.Total)
	}

	inv.SetShippingCost(0)
	inv.SetTax(0)
	if inv.Total != inv.Subtotal {
		t.Errorf("without adjustments total = %v, want subtotal %v", inv.Total, inv.Subtotal)
	}
}

func TestInvoice_EditOutOfRange(t *testing.T) {
	inv := NewInvoiceFromExtraction(invoiceFixture())

	if err := inv.SetItemQuantity(5, 1); !errors.Is(err, ErrItemIndex) {
		t.Errorf("SetItemQuantity(5) error = %v, want ErrItemIndex", err)
	}
	if err := inv.SetItemRate(-1, 1); !errors.Is(err, ErrItemIndex) {
		t.Errorf("SetItemRate(-1) error = %v, want ErrItemIndex", err)
	}
}

func TestInvoice_CurrencySetOnce(t *testing.T) {
	inv := NewInvoiceFromExtraction(invoiceFixture())

	if inv.Currency() != "" {
		t.Fatalf("currency should be empty before the company fetch, got %q", inv.Currency())
	}
	if err := inv.SetCurrency("USD"); err != nil {
		t.Fatalf("first SetCurrency() failed: %v", err)
	}
	if err := inv.SetCurrency("USD"); err != nil {
		t.Errorf("idempotent SetCurrency() failed: %v", err)
	}
	if err := inv.SetCurrency("EUR"); !errors.Is(err, ErrCurrencyFixed) {
		t.Errorf("changing currency error = %v, want ErrCurrencyFixed", err)
	}
	if inv.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", inv.Currency())
	}
}

func TestNewPurchaseOrderFromExtraction_DerivesTotals(t *testing.T) {
	po := NewPurchaseOrderFromExtraction(poFixture())

	if po.Items[0].Total != 250 {
		t.Errorf("item 0 total = %v, want 250", po.Items[0].Total)
	}
	if po.Items[1].Total != 42.5 {
		t.Errorf("item 1 total = %v, want 42.5", po.Items[1].Total)
	}
	if po.TotalAmount != 292.5 {
		t.Errorf("total amount = %v, want 292.5", po.TotalAmount)
	}
	if po.Status != POStatusDraft {
		t.Errorf("status = %v, want Draft", po.Status)
	}
}

func TestPurchaseOrder_EditRecomputes(t *testing.T) {
	po := NewPurchaseOrderFromExtraction(poFixture())

	if err := po.SetItemUnitPrice(1, 10); err != nil {
		t.Fatalf("SetItemUnitPrice() failed: %v", err)
	}
	if po.TotalAmount != 300 {
		t.Errorf("total amount = %v, want 300", po.TotalAmount)
	}

	if err := po.SetItemQuantity(0, 0); err != nil {
		t.Fatalf("SetItemQuantity() failed: %v", err)
	}
	if po.TotalAmount != 50 {
		t.Errorf("total amount = %v, want 50", po.TotalAmount)
	}
}

func TestNewPurchaseOrderFromExtraction_DefaultsStatus(t *testing.T) {
	data := poFixture()
	data.Status = ""
	po := NewPurchaseOrderFromExtraction(data)
	if po.Status != POStatusDraft {
		t.Errorf("status = %v, want Draft default", po.Status)
	}
}
