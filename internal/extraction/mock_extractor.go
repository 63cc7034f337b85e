package extraction

import (
	"context"
	"io"
	"time"
)

// MockExtractor returns fixed extraction results regardless of file content.
// It stands in for the document-intelligence engine so the upload API and the
// browser suite can run without it.
type MockExtractor struct {
	// Confidence reported alongside every result.
	Confidence float64

	now func() time.Time
}

// NewMockExtractor creates a mock extractor with the default confidence.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{
		Confidence: 0.85,
		now:        time.Now,
	}
}

// ExtractInvoice discards the file and returns the canonical invoice fixture.
func (m *MockExtractor) ExtractInvoice(ctx context.Context, file io.Reader, filename string) (*InvoiceData, error) {
	if err := drain(ctx, file); err != nil {
		return nil, err
	}

	return &InvoiceData{
		InvoiceID:               "INV-2026-001",
		VendorName:              "Sample Vendor Inc",
		InvoiceDate:             m.now().Format("2006-01-02"),
		DueDate:                 "2026-02-28",
		BillingAddressRecipient: "John Doe",
		ShippingAddress:         "123 Main St, City, State 12345",
		Currency:                "USD",
		SubTotal:                1000.00,
		ShippingCost:            50.00,
		Tax:                     50.00,
		InvoiceTotal:            1100.00,
		Items: []InvoiceItemData{
			{
				Description: "Sample Product 1",
				Category:    "Category A",
				Quantity:    2,
				Rate:        300.00,
				Amount:      600.00,
			},
			{
				Description: "Sample Product 2",
				Category:    "Category B",
				Quantity:    1,
				Rate:        400.00,
				Amount:      400.00,
			},
		},
	}, nil
}

// ExtractPurchaseOrder discards the file and returns the canonical purchase
// order fixture.
func (m *MockExtractor) ExtractPurchaseOrder(ctx context.Context, file io.Reader, filename string) (*PurchaseOrderData, error) {
	if err := drain(ctx, file); err != nil {
		return nil, err
	}

	return &PurchaseOrderData{
		PONumber:     "PO-2026-001",
		Date:         m.now().Format("2006-01-02"),
		DeliveryDate: "2026-02-15",
		SupplierName: "ABC Suppliers Inc",
		CompanyName:  "My Company",
		Currency:     "USD",
		TotalAmount:  1820.00,
		Status:       "Pending",
		Items: []PurchaseOrderItemData{
			{
				ItemCode:    "ITEM-001",
				Description: "Ergonomic Office Chair",
				Quantity:    5,
				UnitPrice:   150.00,
				Total:       750.00,
			},
			{
				ItemCode:    "ITEM-002",
				Description: "Standing Desk - Adjustable",
				Quantity:    3,
				UnitPrice:   250.00,
				Total:       750.00,
			},
			{
				ItemCode:    "ITEM-003",
				Description: "Monitor Arm Mount",
				Quantity:    4,
				UnitPrice:   80.00,
				Total:       320.00,
			},
		},
	}, nil
}

// drain consumes the uploaded file so the transport can reuse the connection,
// honoring cancellation.
func drain(ctx context.Context, file io.Reader) error {
	if file == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.Copy(io.Discard, file)
	return err
}
